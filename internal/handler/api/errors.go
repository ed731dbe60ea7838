package api

import (
	"net/http"

	"checkout-orchestrator/internal/handler/httperr"
	"checkout-orchestrator/internal/pkg/errs"
	"checkout-orchestrator/internal/pkg/validate"
	"checkout-orchestrator/internal/usecase/commands"
	"checkout-orchestrator/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase errors onto the HTTP error envelope.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		if verr, ok := validate.AsError(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err, verr.Error(), verr.Violations)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, commands.ErrInvalidIdempotencyKey):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency-Key was already used for a different request", nil)
	case errs.Is(err, queries.ErrSessionIDRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "session_id is required", nil)
	case errs.Is(err, queries.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout session not found", nil)
	case errs.Is(err, commands.ErrCheckoutCreationFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to create checkout session URL", nil)
	case errs.Is(err, errs.ErrGatewayRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway rejected the request", nil)
	case errs.Is(err, errs.ErrGatewayContract):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Unexpected payment gateway response", nil)
	case errs.Is(err, errs.ErrGatewayUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment gateway unavailable", nil)
	case errs.Is(err, errs.ErrIdempotencyStoreFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Idempotency store unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
