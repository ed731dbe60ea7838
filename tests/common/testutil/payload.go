//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// PayloadEdit changes one key of a request body before it is sent.
type PayloadEdit func(m map[string]any)

// DtoMap turns a request DTO into its JSON object form so tests can send
// values the DTO's Go types cannot hold, such as a string price.
func DtoMap(t *testing.T, v any, edits ...PayloadEdit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

// Field sets key to value. A nil value is sent as an explicit JSON null.
func Field(key string, value any) PayloadEdit {
	return func(m map[string]any) {
		m[key] = value
	}
}

// Without drops key from the body entirely.
func Without(key string) PayloadEdit {
	return func(m map[string]any) {
		delete(m, key)
	}
}
