package response

import (
	"checkout-orchestrator/internal/usecase/queries"
)

type CheckoutSessionStatusResponse struct {
	PaymentStatus string `json:"payment_status" example:"paid"`
	Amount        int64  `json:"amount" example:"9999"`
	CustomerName  string `json:"customerName" example:"John Doe"`
	CustomerEmail string `json:"customerEmail" example:"john@example.com"`
}

func FromCheckoutSessionView(v *queries.CheckoutSessionView) *CheckoutSessionStatusResponse {
	return &CheckoutSessionStatusResponse{
		PaymentStatus: string(v.PaymentStatus),
		Amount:        v.Amount,
		CustomerName:  v.CustomerName,
		CustomerEmail: v.CustomerEmail,
	}
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
