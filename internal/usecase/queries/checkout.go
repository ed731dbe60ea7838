package queries

import (
	"context"
	"strings"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/pkg/errs"
	"checkout-orchestrator/internal/pkg/ptr"
	"checkout-orchestrator/internal/usecase/shared"
)

var (
	ErrSessionNotFound   = errs.New("checkout session not found")
	ErrSessionIDRequired = errs.New("session id is required")
)

// CheckoutSessionView is the stable status shape handed to callers; it never has nil fields.
type CheckoutSessionView struct {
	PaymentStatus checkout.PaymentStatus `json:"payment_status"`
	Amount        int64                  `json:"amount"`
	CustomerName  string                 `json:"customerName"`
	CustomerEmail string                 `json:"customerEmail"`
}

type CheckoutQueries interface {
	GetSession(ctx context.Context, sessionID string) (*CheckoutSessionView, error)
}

type checkoutQueriesImpl struct {
	gateway shared.PaymentGateway
}

func NewCheckoutQueries(gateway shared.PaymentGateway) CheckoutQueries {
	return &checkoutQueriesImpl{gateway: gateway}
}

// GetSession always asks the gateway; status must reflect its current answer.
func (q *checkoutQueriesImpl) GetSession(ctx context.Context, sessionID string) (*CheckoutSessionView, error) {
	// the id is opaque; whitespace only matters for the emptiness check
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionIDRequired
	}

	session, err := q.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, shared.ClassifyGatewayError(err, "retrieve checkout session")
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	return toSessionView(session), nil
}

func toSessionView(s *shared.GatewaySession) *CheckoutSessionView {
	view := &CheckoutSessionView{
		PaymentStatus: s.PaymentStatus,
		Amount:        ptr.Deref(s.AmountTotal, 0),
	}
	if s.CustomerDetails != nil {
		view.CustomerName = ptr.Deref(s.CustomerDetails.Name, "")
		view.CustomerEmail = ptr.Deref(s.CustomerDetails.Email, "")
	}
	return view
}
