package bootstrap

import (
	"log/slog"

	"checkout-orchestrator/internal/infra/gateway"
	"checkout-orchestrator/internal/pkg/config"
	"checkout-orchestrator/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *gateway.StripeGateway {
	if cfg.Stripe.APIURL != "" {
		logger.Info("Stripe API URL overridden", "url", cfg.Stripe.APIURL)
	}
	return gateway.NewStripeGateway(cfg.Stripe, logger)
}
