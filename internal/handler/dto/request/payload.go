package request

import (
	"errors"
	"io"

	"checkout-orchestrator/internal/pkg/validate"

	"github.com/gin-gonic/gin"
)

// BindPayload decodes the JSON body into an untyped payload. Field types are
// checked by the domain validators so a wrong type is reported per field
// instead of failing the whole body. An empty body yields an empty payload.
func BindPayload(c *gin.Context) (validate.Payload, error) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return validate.Payload(body), nil
}

// CheckoutSessionRequest describes the create-checkout-session body for API docs.
type CheckoutSessionRequest struct {
	ProductName   string  `json:"productName" example:"Widget"`
	ProductPrice  int64   `json:"productPrice" example:"9999"`
	CustomerEmail string  `json:"customerEmail" example:"john@example.com"`
	ImageURL      *string `json:"imageUrl,omitempty" example:"https://cdn.example.com/widget.png"`
}

// OrderRequest describes the order body for API docs.
type OrderRequest struct {
	CustomerName       string  `json:"customerName" example:"John Doe"`
	CustomerEmail      string  `json:"customerEmail" example:"john@example.com"`
	ProductName        string  `json:"productName" example:"Widget"`
	ProductPrice       float64 `json:"productPrice" example:"19.99"`
	ProductDescription string  `json:"productDescription" example:"A sturdy widget for every desk"`
	ImageURL           *string `json:"imageUrl,omitempty"`
}
