//go:build unit || e2e

package builder

import (
	"time"

	"checkout-orchestrator/internal/domain/order"
	reqdto "checkout-orchestrator/internal/handler/dto/request"
	"checkout-orchestrator/internal/pkg/validate"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	req reqdto.OrderRequest
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		req: reqdto.OrderRequest{
			CustomerName:       "John Doe",
			CustomerEmail:      "john@example.com",
			ProductName:        "Widget",
			ProductPrice:       19.99,
			ProductDescription: "A sturdy widget for every desk",
		},
	}
}

func (b *OrderBuilder) With(mutate func(*reqdto.OrderRequest)) *OrderBuilder {
	mutate(&b.req)
	return b
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.OrderRequest {
	return b.req
}

func (b *OrderBuilder) BuildPayload() validate.Payload {
	p := validate.Payload{
		"customerName":       b.req.CustomerName,
		"customerEmail":      b.req.CustomerEmail,
		"productName":        b.req.ProductName,
		"productPrice":       b.req.ProductPrice,
		"productDescription": b.req.ProductDescription,
	}
	if b.req.ImageURL != nil {
		p["imageUrl"] = *b.req.ImageURL
	}
	return p
}

func (b *OrderBuilder) MustBuildDomain(id uuid.UUID, now time.Time) *order.Order {
	o, err := order.Parse(b.BuildPayload(), id, now)
	if err != nil {
		panic(err)
	}
	return o
}
