package checkout

import (
	"strconv"

	"checkout-orchestrator/internal/pkg/validate"

	"github.com/cespare/xxhash/v2"
)

const (
	PathProductName   = "productName"
	PathProductPrice  = "productPrice"
	PathCustomerEmail = "customerEmail"
	PathImageURL      = "imageUrl"
)

var requestSchema = validate.NewSchema(
	validate.Field{
		Path:        PathProductName,
		Messages:    map[string]string{"utf16min": MsgProductNameTooShort},
		TypeMessage: MsgProductNameTooShort,
	},
	validate.Field{
		Path:        PathProductPrice,
		Messages:    map[string]string{"min": MsgProductPriceNotPositive},
		TypeMessage: MsgProductPriceNotPositive,
	},
	validate.Field{
		Path:        PathCustomerEmail,
		Messages:    map[string]string{"email": MsgInvalidEmail, "required": MsgEmailRequired},
		TypeMessage: MsgInvalidEmail,
	},
	validate.Field{
		Path:        PathImageURL,
		Messages:    map[string]string{"utf16max": MsgImageURLTooLong},
		TypeMessage: MsgImageURLTooLong,
	},
)

type requestFields struct {
	ProductName   string  `json:"productName" validate:"utf16min=2"`
	ProductPrice  int64   `json:"productPrice" validate:"min=1"`
	CustomerEmail string  `json:"customerEmail" validate:"email,required"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,utf16max=2048"`
}

// Request is a validated checkout request. It can only be obtained through
// ParseRequest or NewRequest, so holding one means every field rule passed.
type Request struct {
	productName   string
	productPrice  int64
	customerEmail string
	imageURL      *string
}

// ParseRequest validates an untyped payload. On failure the returned error is a
// *validate.Error listing every violated field.
func ParseRequest(payload validate.Payload) (*Request, error) {
	var (
		fields     requestFields
		violations []validate.Violation
		ok         bool
	)

	if fields.ProductName, ok = payload.String(PathProductName); !ok {
		violations = append(violations, requestSchema.TypeViolation(PathProductName))
	}
	if fields.ProductPrice, ok = payload.Int64(PathProductPrice); !ok {
		violations = append(violations, requestSchema.TypeViolation(PathProductPrice))
	}
	if fields.CustomerEmail, ok = payload.String(PathCustomerEmail); !ok {
		violations = append(violations, requestSchema.TypeViolation(PathCustomerEmail))
	}
	if fields.ImageURL, ok = payload.OptionalString(PathImageURL); !ok {
		violations = append(violations, requestSchema.TypeViolation(PathImageURL))
	}

	return build(fields, violations)
}

func NewRequest(productName string, productPrice int64, customerEmail string, imageURL *string) (*Request, error) {
	return build(requestFields{
		ProductName:   productName,
		ProductPrice:  productPrice,
		CustomerEmail: customerEmail,
		ImageURL:      imageURL,
	}, nil)
}

func build(fields requestFields, violations []validate.Violation) (*Request, error) {
	if err := requestSchema.Check(&fields, violations); err != nil {
		return nil, err
	}

	var imageURL *string
	if fields.ImageURL != nil {
		v := *fields.ImageURL
		imageURL = &v
	}

	return &Request{
		productName:   fields.ProductName,
		productPrice:  fields.ProductPrice,
		customerEmail: fields.CustomerEmail,
		imageURL:      imageURL,
	}, nil
}

func (r *Request) ProductName() string   { return r.productName }
func (r *Request) ProductPrice() int64   { return r.productPrice }
func (r *Request) CustomerEmail() string { return r.customerEmail }

func (r *Request) ImageURL() (string, bool) {
	if r.imageURL == nil || *r.imageURL == "" {
		return "", false
	}
	return *r.imageURL, true
}

// Fingerprint identifies the logical order so a reused idempotency key can be
// told apart from a genuine retry.
func (r *Request) Fingerprint() uint64 {
	d := xxhash.New()
	image, _ := r.ImageURL()
	for _, part := range []string{r.productName, strconv.FormatInt(r.productPrice, 10), r.customerEmail, image} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
