//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ErrorBody struct {
	Error  string `json:"error"`
	Detail []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse ErrorBody
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
	return errorResponse
}

// AssertViolation checks that the error detail lists message for path.
func AssertViolation(t *testing.T, body ErrorBody, path, message string) {
	t.Helper()

	for _, d := range body.Detail {
		if d.Path == path {
			assert.Equal(t, message, d.Message, "violation message for %s", path)
			return
		}
	}
	assert.Failf(t, "violation not found", "no violation for path %q in %+v", path, body.Detail)
}

// AssertReplayed checks whether the response was served from an earlier
// request with the same idempotency key.
func AssertReplayed(t *testing.T, w *httptest.ResponseRecorder, replayed bool) {
	t.Helper()

	if replayed {
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"), "expected a replayed response")
		return
	}
	assert.Empty(t, w.Header().Get("Idempotent-Replayed"), "expected a fresh response")
}
