package checkout

import (
	"strings"

	"checkout-orchestrator/internal/pkg/errs"
)

var ErrSuccessURLMissingPlaceholder = errs.New("success url must contain " + SessionIDPlaceholder)

type LineItem struct {
	Name       string
	Images     []string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// SessionDraft is everything the gateway needs to open a hosted checkout page.
type SessionDraft struct {
	LineItems     []LineItem
	CustomerEmail string
	Mode          Mode
	SuccessURL    string
}

type SessionFactory struct {
	SuccessURL string
	Currency   string
}

func NewSessionFactory(successURL, currency string) (*SessionFactory, error) {
	if !strings.Contains(successURL, SessionIDPlaceholder) {
		return nil, ErrSuccessURLMissingPlaceholder
	}
	return &SessionFactory{
		SuccessURL: successURL,
		Currency:   strings.ToLower(currency),
	}, nil
}

func (f *SessionFactory) Draft(req *Request) SessionDraft {
	item := LineItem{
		Name:       req.ProductName(),
		Currency:   f.Currency,
		UnitAmount: req.ProductPrice(),
		Quantity:   Quantity,
	}
	if url, ok := req.ImageURL(); ok {
		item.Images = []string{url}
	}

	return SessionDraft{
		LineItems:     []LineItem{item},
		CustomerEmail: req.CustomerEmail(),
		Mode:          ModePayment,
		SuccessURL:    f.SuccessURL,
	}
}
