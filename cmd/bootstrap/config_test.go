//go:build unit

package bootstrap

import (
	"testing"

	"checkout-orchestrator/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "sk_test_***", maskSecret("sk_test_51Habc"))
	assert.Equal(t, "rk_live_***", maskSecret("rk_live_xyz"))
	assert.Equal(t, "***", maskSecret("opaque"))
	assert.Equal(t, "", maskSecret(""))
}

func TestIdempotencyBackend(t *testing.T) {
	assert.Equal(t, "memory", idempotencyBackend(config.IdempotencyConfig{}))
	assert.Equal(t, "redis", idempotencyBackend(config.IdempotencyConfig{RedisAddr: "localhost:6379"}))
}
