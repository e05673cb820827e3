package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/usecase/pipeline"

	"github.com/google/uuid"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	Status          IdempotencyStatus
	RequestHash     string
	ResultRequestID *uuid.UUID
	ExpiresAt       time.Time
}

type VenueRepository interface {
	FindByID(ctx context.Context, id string) (*venue.Venue, error)
}

// IdempotencyRepository remembers submissions made with an Idempotency-Key.
// TryInsert reports false when a live record for the key already exists.
type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, key uuid.UUID, resultRequestID uuid.UUID) error
	Delete(ctx context.Context, key uuid.UUID) error
}

// QuoteRequestDispatcher is the write side of the quote pipeline.
type QuoteRequestDispatcher interface {
	Dispatch(cmd pipeline.Command) (pipeline.Result, error)
}
