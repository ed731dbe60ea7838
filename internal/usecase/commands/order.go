package commands

import (
	"context"

	"checkout-orchestrator/internal/domain/order"
	"checkout-orchestrator/internal/pkg/clock"
	"checkout-orchestrator/internal/pkg/validate"

	"github.com/google/uuid"
)

type OrderCommands interface {
	Place(ctx context.Context, payload validate.Payload) (*order.Order, error)
}

type orderCommandsImpl struct {
	clock clock.Clock
}

func NewOrderCommands(clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{clock: clk}
}

// Place validates the order and stamps a fresh id. Nothing is stored.
func (uc *orderCommandsImpl) Place(_ context.Context, payload validate.Payload) (*order.Order, error) {
	return order.Parse(payload, uuid.New(), uc.clock.Now())
}
