//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"checkout-orchestrator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches marker and keeps cause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := errs.Mark(cause, errs.ErrGatewayUnavailable)

		assert.True(t, errs.Is(err, errs.ErrGatewayUnavailable))
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("nil error returns marker itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrValidation)
		assert.Same(t, errs.ErrValidation, err)
	})

	t.Run("mark survives wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("boom"), errs.ErrGatewayRejected), "create session")
		assert.True(t, errs.Is(err, errs.ErrGatewayRejected))
		assert.False(t, errs.Is(err, errs.ErrGatewayUnavailable))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	err := errs.Wrapf(errors.New("inner"), "outer %s", "ctx")
	assert.Equal(t, "outer ctx: inner", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("with stack"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "with stack", lines[0])
}
