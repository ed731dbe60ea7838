package shared

import (
	"context"
	"errors"

	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/pkg/errs"
)

// ClassifyGatewayError marks a gateway failure with the matching errs sentinel.
// Not-found is left to the caller since only the resolver treats it specially.
func ClassifyGatewayError(err error, op string) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, op)
	switch {
	case infra.IsKind(err, infra.KindUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return errs.Mark(wrapped, errs.ErrGatewayUnavailable)
	case infra.IsKind(err, infra.KindRejected):
		return errs.Mark(wrapped, errs.ErrGatewayRejected)
	case infra.IsKind(err, infra.KindContract):
		return errs.Mark(wrapped, errs.ErrGatewayContract)
	default:
		return wrapped
	}
}
