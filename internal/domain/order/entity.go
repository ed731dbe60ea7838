package order

import (
	"time"

	"checkout-orchestrator/internal/pkg/errs"
	"checkout-orchestrator/internal/pkg/validate"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const (
	MinDescriptionLength = 10
)

const (
	MsgCustomerNameRequired = "Customer name is required"
	MsgInvalidEmail         = "Invalid email address"
	MsgProductNameRequired  = "Product name is required"
	MsgPriceNotPositive     = "Product price must be greater than 0"
	MsgDescriptionTooShort  = "Product description must be at least 10 characters"
	MsgImageURLInvalid      = "Image URL must be a string"
)

var MinPrice = decimal.RequireFromString("0.01")

var schema = validate.NewSchema(
	validate.Field{Path: "customerName", Messages: map[string]string{"required": MsgCustomerNameRequired}, TypeMessage: MsgCustomerNameRequired},
	validate.Field{Path: "customerEmail", Messages: map[string]string{"required": MsgInvalidEmail, "email": MsgInvalidEmail}, TypeMessage: MsgInvalidEmail},
	validate.Field{Path: "productName", Messages: map[string]string{"required": MsgProductNameRequired}, TypeMessage: MsgProductNameRequired},
	validate.Field{Path: "productPrice", TypeMessage: MsgPriceNotPositive},
	validate.Field{Path: "productDescription", Messages: map[string]string{"utf16min": MsgDescriptionTooShort}, TypeMessage: MsgDescriptionTooShort},
	validate.Field{Path: "imageUrl", TypeMessage: MsgImageURLInvalid},
)

type fields struct {
	CustomerName       string          `json:"customerName" validate:"required"`
	CustomerEmail      string          `json:"customerEmail" validate:"required,email"`
	ProductName        string          `json:"productName" validate:"required"`
	ProductPrice       decimal.Decimal `json:"productPrice"`
	ProductDescription string          `json:"productDescription" validate:"utf16min=10"`
	ImageURL           *string         `json:"imageUrl"`
}

// Order is an echoed order record. It is never stored.
type Order struct {
	ID                 uuid.UUID
	CustomerName       string
	CustomerEmail      string
	ProductName        string
	ProductPrice       decimal.Decimal
	ProductDescription string
	ImageURL           *string
	CreatedAt          time.Time
}

func Parse(payload validate.Payload, id uuid.UUID, now time.Time) (*Order, error) {
	var (
		f          fields
		violations []validate.Violation
		ok         bool
	)

	if f.CustomerName, ok = payload.String("customerName"); !ok {
		violations = append(violations, schema.TypeViolation("customerName"))
	}
	if f.CustomerEmail, ok = payload.String("customerEmail"); !ok {
		violations = append(violations, schema.TypeViolation("customerEmail"))
	}
	if f.ProductName, ok = payload.String("productName"); !ok {
		violations = append(violations, schema.TypeViolation("productName"))
	}
	// decimal.Decimal has no validator tags; the range check happens here
	if f.ProductPrice, ok = payload.Decimal("productPrice"); !ok || f.ProductPrice.LessThan(MinPrice) {
		violations = append(violations, schema.TypeViolation("productPrice"))
	}
	if f.ProductDescription, ok = payload.String("productDescription"); !ok {
		violations = append(violations, schema.TypeViolation("productDescription"))
	}
	if f.ImageURL, ok = payload.OptionalString("imageUrl"); !ok {
		violations = append(violations, schema.TypeViolation("imageUrl"))
	}

	if err := schema.Check(&f, violations); err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	o := &Order{ID: id, CreatedAt: now}
	if err := copier.Copy(o, &f); err != nil {
		return nil, errs.Wrap(err, "copy order fields")
	}
	return o, nil
}
