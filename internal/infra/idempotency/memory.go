package idempotency

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/pkg/clock"
	"checkout-orchestrator/internal/usecase/shared"
)

type memoryEntry struct {
	record    shared.IdempotencyRecord
	expiresAt time.Time
}

// MemoryStore keeps records in process memory. Records vanish on restart and are
// not shared between replicas; use RedisStore when either matters.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clock.Clock
	logger  *slog.Logger
}

func NewMemoryStore(clk clock.Clock, logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		clock:   clk,
		logger:  logger,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*shared.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, infra.NewErr(infra.KindNotFound, "idempotency key not found")
	}
	if clock.Expired(s.clock, entry.expiresAt) {
		delete(s.entries, key)
		return nil, infra.NewErr(infra.KindNotFound, "idempotency key expired")
	}

	rec := entry.record
	return &rec, nil
}

// Save keeps the first record written for a key until it expires.
func (s *MemoryStore) Save(_ context.Context, rec shared.IdempotencyRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[rec.Key]; ok && !clock.Expired(s.clock, existing.expiresAt) {
		s.logger.Debug("idempotency key already recorded", "key", rec.Key)
		return nil
	}

	s.entries[rec.Key] = memoryEntry{record: rec, expiresAt: s.clock.Now().Add(ttl)}
	return nil
}

// Sweep drops expired records and reports how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if clock.Expired(s.clock, entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
