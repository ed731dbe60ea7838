package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"checkout-orchestrator/internal/infra/idempotency"
	"checkout-orchestrator/internal/pkg/clock"
	"checkout-orchestrator/internal/pkg/config"
	"checkout-orchestrator/internal/pkg/errs"
	"checkout-orchestrator/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const memorySweepInterval = time.Minute

var IdempotencyModule = fx.Module("idempotency",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore picks Redis when REDIS_ADDR is set and falls back to process memory.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.IdempotencyStore, error) {
	if cfg.Idempotency.UseRedis() {
		return newRedisStore(lc, cfg.Idempotency, logger), nil
	}
	return newMemoryStore(lc, clk, logger), nil
}

func newRedisStore(lc fx.Lifecycle, cfg config.IdempotencyConfig, logger *slog.Logger) *idempotency.RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "ping redis at %s", cfg.RedisAddr)
			}
			logger.Info("idempotency store: redis", "addr", cfg.RedisAddr, "ttl", cfg.TTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return idempotency.NewRedisStore(client, logger)
}

func newMemoryStore(lc fx.Lifecycle, clk clock.Clock, logger *slog.Logger) *idempotency.MemoryStore {
	store := idempotency.NewMemoryStore(clk, logger)
	done := make(chan struct{})
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("idempotency store: memory")
			go func() {
				defer close(stopped)
				ticker := time.NewTicker(memorySweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Debug("expired idempotency records removed", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			select {
			case <-stopped:
			case <-ctx.Done():
			}
			return nil
		},
	})

	return store
}
