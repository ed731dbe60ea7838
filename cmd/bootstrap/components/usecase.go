package components

import (
	"time"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/internal/pkg/clock"
	"checkout-orchestrator/internal/pkg/config"
	"checkout-orchestrator/internal/usecase/commands"
	"checkout-orchestrator/internal/usecase/queries"
	"checkout-orchestrator/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (*checkout.SessionFactory, error) {
		return checkout.NewSessionFactory(cfg.Checkout.SuccessURL, cfg.Checkout.Currency)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			gateway shared.PaymentGateway,
			store shared.IdempotencyStore,
			factory *checkout.SessionFactory,
			clk clock.Clock,
			cfg config.Config,
		) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(gateway, store, factory, clk, idempotencyTTL(cfg))
		},
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
	),
)

func idempotencyTTL(cfg config.Config) time.Duration {
	if cfg.Idempotency.TTL <= 0 {
		return 24 * time.Hour
	}
	return cfg.Idempotency.TTL
}
