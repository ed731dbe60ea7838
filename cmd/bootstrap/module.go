package bootstrap

import (
	"checkout-orchestrator/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	GatewayModule,
	IdempotencyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
