package api

import (
	"net/http"

	reqdto "checkout-orchestrator/internal/handler/dto/request"
	resdto "checkout-orchestrator/internal/handler/dto/response"
	"checkout-orchestrator/internal/handler/httperr"
	"checkout-orchestrator/internal/usecase/commands"
	"checkout-orchestrator/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
	sessionIDQueryParam      = "session_id"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Create checkout session
// @Description Validate the order and open a hosted checkout page. The body is the redirect URL.
// @Tags checkout
// @Accept json
// @Produce plain
// @Param Idempotency-Key header string false "Retry token; a reused key replays the first result"
// @Param request body reqdto.CheckoutSessionRequest true "Checkout request"
// @Success 200 {string} string "Redirect URL"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /create-checkout-session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	payload, err := reqdto.BindPayload(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	result, err := h.cmds.CreateSession(c.Request.Context(), payload, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	if result.Replayed {
		c.Header(IdempotentReplayedHeader, "true")
	}
	c.String(http.StatusOK, result.RedirectURL)
}

// @Summary Checkout session status
// @Description Fetch the current payment status of a checkout session
// @Tags checkout
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.CheckoutSessionStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /success [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	view, err := h.q.GetSession(c.Request.Context(), c.Query(sessionIDQueryParam))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSessionView(view))
}
