package bootstrap

import (
	"log/slog"
	"strings"

	"checkout-orchestrator/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary records the effective settings once at startup. The Stripe
// key is reduced to its mode prefix.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("設定を読み込みました",
		"port", cfg.Server.Port,
		"stripe_key", maskSecret(cfg.Stripe.SecretKey),
		"stripe_api_url", cfg.Stripe.APIURL,
		"gateway_timeout", cfg.Stripe.Timeout,
		"currency", cfg.Checkout.Currency,
		"idempotency_backend", idempotencyBackend(cfg.Idempotency),
		"idempotency_ttl", cfg.Idempotency.TTL,
	)
	if strings.HasPrefix(cfg.Stripe.SecretKey, "sk_live_") && cfg.Stripe.APIURL != "" {
		logger.Warn("live Stripe key used with an overridden API URL", "stripe_api_url", cfg.Stripe.APIURL)
	}
}

func maskSecret(secret string) string {
	if i := strings.LastIndex(secret, "_"); i > 0 {
		return secret[:i+1] + "***"
	}
	if secret == "" {
		return ""
	}
	return "***"
}

func idempotencyBackend(cfg config.IdempotencyConfig) string {
	if cfg.UseRedis() {
		return "redis"
	}
	return "memory"
}
