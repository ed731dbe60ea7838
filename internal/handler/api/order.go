package api

import (
	"net/http"

	reqdto "checkout-orchestrator/internal/handler/dto/request"
	resdto "checkout-orchestrator/internal/handler/dto/response"
	"checkout-orchestrator/internal/handler/httperr"
	"checkout-orchestrator/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Place order
// @Description Validate an order and echo it back with a fresh order ID. Nothing is stored.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.OrderRequest true "Order"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /order [post]
func (h *OrderHandler) Place(c *gin.Context) {
	payload, err := reqdto.BindPayload(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	o, err := h.cmds.Place(c.Request.Context(), payload)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromOrder(o)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
