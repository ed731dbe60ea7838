//go:build unit || e2e

package builder

import (
	"checkout-orchestrator/internal/domain/checkout"
	reqdto "checkout-orchestrator/internal/handler/dto/request"
	"checkout-orchestrator/internal/pkg/validate"
	"checkout-orchestrator/internal/usecase/shared"
)

type CheckoutBuilder struct {
	ProductName   string
	ProductPrice  int64
	CustomerEmail string
	ImageURL      *string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		ProductName:   "Widget",
		ProductPrice:  9999,
		CustomerEmail: "john@example.com",
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) WithProductName(name string) *CheckoutBuilder {
	b.ProductName = name
	return b
}

func (b *CheckoutBuilder) WithProductPrice(price int64) *CheckoutBuilder {
	b.ProductPrice = price
	return b
}

func (b *CheckoutBuilder) WithCustomerEmail(email string) *CheckoutBuilder {
	b.CustomerEmail = email
	return b
}

func (b *CheckoutBuilder) WithImageURL(url string) *CheckoutBuilder {
	b.ImageURL = &url
	return b
}

// Build methods
func (b *CheckoutBuilder) BuildDomain() (*checkout.Request, error) {
	return checkout.NewRequest(b.ProductName, b.ProductPrice, b.CustomerEmail, b.ImageURL)
}

func (b *CheckoutBuilder) MustBuildDomain() *checkout.Request {
	req, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return req
}

// BuildPayload mirrors what the HTTP layer hands to the validator after JSON decoding.
func (b *CheckoutBuilder) BuildPayload() validate.Payload {
	p := validate.Payload{
		checkout.PathProductName:   b.ProductName,
		checkout.PathProductPrice:  float64(b.ProductPrice),
		checkout.PathCustomerEmail: b.CustomerEmail,
	}
	if b.ImageURL != nil {
		p[checkout.PathImageURL] = *b.ImageURL
	}
	return p
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CheckoutSessionRequest {
	return reqdto.CheckoutSessionRequest{
		ProductName:   b.ProductName,
		ProductPrice:  b.ProductPrice,
		CustomerEmail: b.CustomerEmail,
		ImageURL:      b.ImageURL,
	}
}

type GatewaySessionBuilder struct {
	session shared.GatewaySession
}

func NewGatewaySessionBuilder() *GatewaySessionBuilder {
	name := "John Doe"
	email := "john@example.com"
	amount := int64(9999)
	return &GatewaySessionBuilder{
		session: shared.GatewaySession{
			ID:            "cs_test_a1b2c3",
			PaymentStatus: checkout.PaymentStatusPaid,
			AmountTotal:   &amount,
			CustomerDetails: &shared.CustomerDetails{
				Name:  &name,
				Email: &email,
			},
		},
	}
}

func (b *GatewaySessionBuilder) With(mutate func(*shared.GatewaySession)) *GatewaySessionBuilder {
	mutate(&b.session)
	return b
}

func (b *GatewaySessionBuilder) Build() *shared.GatewaySession {
	s := b.session
	return &s
}
