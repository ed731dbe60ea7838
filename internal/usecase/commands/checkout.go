package commands

import (
	"context"
	"log/slog"
	"time"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/pkg/clock"
	"checkout-orchestrator/internal/pkg/errs"
	"checkout-orchestrator/internal/pkg/validate"
	"checkout-orchestrator/internal/usecase/shared"
)

const MaxIdempotencyKeyLength = 255

var (
	// ErrCheckoutCreationFailed: the gateway accepted the request but returned no redirect URL.
	ErrCheckoutCreationFailed = errs.New("failed to create checkout session url")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrInvalidIdempotencyKey  = errs.New("idempotency key is too long")
)

type CreateSessionResult struct {
	SessionID   string
	RedirectURL string
	// Replayed is true when the result came from an earlier call with the same idempotency key.
	Replayed bool
}

type CheckoutCommands interface {
	CreateSession(ctx context.Context, payload validate.Payload, idempotencyKey string) (*CreateSessionResult, error)
}

type checkoutCommandsImpl struct {
	gateway shared.PaymentGateway
	store   shared.IdempotencyStore
	factory *checkout.SessionFactory
	clock   clock.Clock
	ttl     time.Duration
}

func NewCheckoutCommands(
	gateway shared.PaymentGateway,
	store shared.IdempotencyStore,
	factory *checkout.SessionFactory,
	clk clock.Clock,
	ttl time.Duration,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		gateway: gateway,
		store:   store,
		factory: factory,
		clock:   clk,
		ttl:     ttl,
	}
}

func (uc *checkoutCommandsImpl) CreateSession(ctx context.Context, payload validate.Payload, idempotencyKey string) (*CreateSessionResult, error) {
	if len(idempotencyKey) > MaxIdempotencyKeyLength {
		return nil, ErrInvalidIdempotencyKey
	}

	req, err := checkout.ParseRequest(payload)
	if err != nil {
		return nil, err
	}

	if idempotencyKey == "" {
		return uc.createNewSession(ctx, req, "")
	}

	existing, err := uc.findPrevious(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Fingerprint != req.Fingerprint() {
			return nil, ErrIdempotencyKeyReused
		}
		return &CreateSessionResult{
			SessionID:   existing.SessionID,
			RedirectURL: existing.RedirectURL,
			Replayed:    true,
		}, nil
	}

	result, err := uc.createNewSession(ctx, req, idempotencyKey)
	if err != nil {
		return nil, err
	}

	rec := shared.IdempotencyRecord{
		Key:         idempotencyKey,
		Fingerprint: req.Fingerprint(),
		SessionID:   result.SessionID,
		RedirectURL: result.RedirectURL,
		CreatedAt:   uc.clock.Now(),
	}
	if saveErr := uc.store.Save(ctx, rec, uc.ttl); saveErr != nil {
		// The gateway still dedupes on the forwarded key, so a lost record only costs a round-trip.
		slog.Warn("failed to save idempotency record", "error", saveErr, "session_id", result.SessionID)
	}

	return result, nil
}

func (uc *checkoutCommandsImpl) findPrevious(ctx context.Context, key string) (*shared.IdempotencyRecord, error) {
	rec, err := uc.store.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyStoreFailed)
	}
	return rec, nil
}

func (uc *checkoutCommandsImpl) createNewSession(ctx context.Context, req *checkout.Request, idempotencyKey string) (*CreateSessionResult, error) {
	created, err := uc.gateway.CreateSession(ctx, uc.factory.Draft(req), idempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindContract) {
			return nil, errs.Mark(shared.ClassifyGatewayError(err, "create checkout session"), ErrCheckoutCreationFailed)
		}
		return nil, shared.ClassifyGatewayError(err, "create checkout session")
	}

	if created == nil || created.URL == "" {
		return nil, errs.Mark(errs.Mark(errs.New("gateway response has no checkout url"), errs.ErrGatewayContract), ErrCheckoutCreationFailed)
	}

	return &CreateSessionResult{
		SessionID:   created.ID,
		RedirectURL: created.URL,
	}, nil
}
