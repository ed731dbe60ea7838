//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"checkout-orchestrator/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestInfraError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("wrapped error keeps kind and cause", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := infra.WrapErr(logger, infra.KindUnavailable, "retrieve session", cause)

		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "UNAVAILABLE: retrieve session")
	})

	t.Run("kind survives joining", func(t *testing.T) {
		err := infra.NewErr(infra.KindNotFound, "no such session")
		wrapped := errors.Join(errors.New("context"), err)

		assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: no such session", err.Error())
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
		assert.False(t, infra.IsKind(nil, infra.KindNotFound))
	})
}
