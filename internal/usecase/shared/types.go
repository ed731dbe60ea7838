package shared

import (
	"time"

	"checkout-orchestrator/internal/domain/checkout"
)

type CustomerDetails struct {
	Name  *string
	Email *string
}

// GatewaySession is the gateway's own view of a checkout session; optional
// fields stay nil when the gateway omits them.
type GatewaySession struct {
	ID              string
	PaymentStatus   checkout.PaymentStatus
	AmountTotal     *int64
	CustomerDetails *CustomerDetails
}

type CreatedSession struct {
	ID  string
	URL string
}

type IdempotencyRecord struct {
	Key         string
	Fingerprint uint64
	SessionID   string
	RedirectURL string
	CreatedAt   time.Time
}
