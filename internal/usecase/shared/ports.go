package shared

import (
	"context"
	"time"

	"checkout-orchestrator/internal/domain/checkout"
)

// PaymentGateway is the external hosted-checkout service.
// Implementations return infra.Error values so callers can branch on Kind.
type PaymentGateway interface {
	// CreateSession opens a hosted checkout page. A non-empty idempotencyKey is
	// forwarded to the gateway's own dedupe mechanism.
	CreateSession(ctx context.Context, draft checkout.SessionDraft, idempotencyKey string) (*CreatedSession, error)
	// RetrieveSession returns infra.KindNotFound (or a nil session) when the id is unknown.
	RetrieveSession(ctx context.Context, sessionID string) (*GatewaySession, error)
}

type IdempotencyStore interface {
	// Get returns infra.KindNotFound when the key is unknown or expired.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	Save(ctx context.Context, rec IdempotencyRecord, ttl time.Duration) error
}
