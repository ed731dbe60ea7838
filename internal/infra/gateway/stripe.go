package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/pkg/config"
	"checkout-orchestrator/internal/usecase/shared"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type StripeGateway struct {
	sessions session.Client
	cfg      config.StripeConfig
	logger   *slog.Logger
}

// NewStripeGateway builds a Stripe client with its own backend so settings never
// leak into the stripe package globals. STRIPE_API_URL points it at stripe-mock in tests.
func NewStripeGateway(cfg config.StripeConfig, logger *slog.Logger) *StripeGateway {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
		LeveledLogger:     newLeveledLogger(logger),
		EnableTelemetry:   stripe.Bool(false),
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	return &StripeGateway{
		sessions: session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		cfg:    cfg,
		logger: logger,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, draft checkout.SessionDraft, idempotencyKey string) (*shared.CreatedSession, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	params := toSessionParams(draft)
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	s, err := g.sessions.New(params)
	if err != nil {
		return nil, g.wrapStripeErr("failed to create checkout session", err)
	}
	if s == nil || s.URL == "" {
		return nil, infra.WrapErr(g.logger, infra.KindContract, "checkout session has no url", nil)
	}

	g.logger.Info("checkout session created", "session_id", s.ID, "livemode", s.Livemode)

	return &shared.CreatedSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*shared.GatewaySession, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return nil, g.wrapStripeErr("failed to retrieve checkout session", err)
	}
	if s == nil {
		return nil, infra.NewErr(infra.KindNotFound, "checkout session not found")
	}

	return toGatewaySession(s), nil
}

// withTimeout bounds a gateway call by GATEWAY_TIMEOUT. A non-positive value
// leaves only the caller's deadline.
func (g *StripeGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.cfg.Timeout)
}

func toSessionParams(draft checkout.SessionDraft) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(draft.Mode)),
		SuccessURL:    stripe.String(draft.SuccessURL),
		CustomerEmail: stripe.String(draft.CustomerEmail),
	}

	for _, item := range draft.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		// an empty non-nil slice would be sent as an explicit empty array
		if len(item.Images) > 0 {
			product.Images = stripe.StringSlice(item.Images)
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(item.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	return params
}

func toGatewaySession(s *stripe.CheckoutSession) *shared.GatewaySession {
	amount := s.AmountTotal
	gs := &shared.GatewaySession{
		ID:            s.ID,
		PaymentStatus: checkout.PaymentStatus(s.PaymentStatus),
		AmountTotal:   &amount,
	}

	if d := s.CustomerDetails; d != nil {
		details := &shared.CustomerDetails{}
		if d.Name != "" {
			name := d.Name
			details.Name = &name
		}
		if d.Email != "" {
			email := d.Email
			details.Email = &email
		}
		gs.CustomerDetails = details
	}

	return gs
}

func (g *StripeGateway) wrapStripeErr(msg string, err error) error {
	return infra.WrapErr(g.logger, classify(err), msg, err)
}

func classify(err error) infra.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return infra.KindUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return infra.KindUnavailable
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return infra.KindUnavailable
	}

	switch {
	case stripeErr.HTTPStatusCode == http.StatusNotFound,
		stripeErr.Code == stripe.ErrorCodeResourceMissing:
		return infra.KindNotFound
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests,
		stripeErr.HTTPStatusCode >= http.StatusInternalServerError,
		stripeErr.Type == stripe.ErrorTypeAPI:
		return infra.KindUnavailable
	default:
		return infra.KindRejected
	}
}
