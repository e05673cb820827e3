package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/usecase/commands"

	"github.com/google/uuid"
)

var errNoIdempotencyKey = errors.New("no live record for idempotency key")

// IdempotencyRepository keeps keys in memory. Expired records are treated as
// absent and dropped by DeleteExpired.
type IdempotencyRepository struct {
	clock clock.Clock

	mu      sync.Mutex
	records map[uuid.UUID]commands.IdempotencyRecord
}

func NewIdempotencyRepository(clk clock.Clock) *IdempotencyRepository {
	return &IdempotencyRepository{
		clock:   clk,
		records: make(map[uuid.UUID]commands.IdempotencyRecord),
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err, infra.KindCanceled)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.records[key]; ok && rec.ExpiresAt.After(r.clock.Now()) {
		return false, nil
	}
	r.records[key] = commands.IdempotencyRecord{
		Key:         key,
		Endpoint:    endpoint,
		Status:      commands.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*commands.IdempotencyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err, infra.KindCanceled)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[key]
	if !ok || !rec.ExpiresAt.After(r.clock.Now()) {
		return nil, infra.WrapRepoErr("idempotency key not found", errNoIdempotencyKey, infra.KindNotFound)
	}
	if rec.ResultRequestID != nil {
		id := *rec.ResultRequestID
		rec.ResultRequestID = &id
	}
	return &rec, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key uuid.UUID, resultRequestID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[key]
	if !ok {
		return infra.WrapRepoErr("failed to update idempotency key status", errNoIdempotencyKey, infra.KindNotFound)
	}
	rec.Status = commands.IdempotencyCompleted
	rec.ResultRequestID = &resultRequestID
	r.records[key] = rec
	return nil
}

// Delete releases a key whose submission failed so the client can reuse it.
func (r *IdempotencyRepository) Delete(ctx context.Context, key uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, key)
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err, infra.KindCanceled)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	var count int64
	for key, rec := range r.records {
		if !rec.ExpiresAt.After(now) {
			delete(r.records, key)
			count++
		}
	}
	return count, nil
}
