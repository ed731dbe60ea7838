package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:idempotency:"

type redisRecord struct {
	Key         string    `json:"key"`
	Fingerprint uint64    `json:"fingerprint"`
	SessionID   string    `json:"session_id"`
	RedirectURL string    `json:"redirect_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// RedisStore shares idempotency records between replicas. Expiry is left to Redis.
type RedisStore struct {
	client redis.Cmdable
	logger *slog.Logger
}

func NewRedisStore(client redis.Cmdable, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*shared.IdempotencyRecord, error) {
	data, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.NewErr(infra.KindNotFound, "idempotency key not found")
	}
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "redis get failed", err)
	}

	var rec redisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindStoreFailure, "unmarshal idempotency record failed", err)
	}

	return &shared.IdempotencyRecord{
		Key:         rec.Key,
		Fingerprint: rec.Fingerprint,
		SessionID:   rec.SessionID,
		RedirectURL: rec.RedirectURL,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

// Save uses SET NX so a concurrent writer for the same key never overwrites the first record.
func (s *RedisStore) Save(ctx context.Context, rec shared.IdempotencyRecord, ttl time.Duration) error {
	data, err := json.Marshal(redisRecord{
		Key:         rec.Key,
		Fingerprint: rec.Fingerprint,
		SessionID:   rec.SessionID,
		RedirectURL: rec.RedirectURL,
		CreatedAt:   rec.CreatedAt,
	})
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "marshal idempotency record failed", err)
	}

	stored, err := s.client.SetNX(ctx, redisKey(rec.Key), data, ttl).Result()
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStoreFailure, "redis set failed", err)
	}
	if !stored {
		s.logger.Debug("idempotency key already recorded", "key", rec.Key)
	}
	return nil
}

func redisKey(key string) string {
	return keyPrefix + key
}
