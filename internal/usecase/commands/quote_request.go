package commands

//go:generate mockgen -source=quote_request.go -destination=../../../tests/mock/commands/quote_request.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/usecase/pipeline"

	"github.com/google/uuid"
)

const submitEndpoint = "POST /api/quote-requests"

var (
	ErrVenueNotFound          = errs.Mark(errs.New("venue not found"), errs.ErrNotFound)
	ErrQuoteRequestNotFound   = errs.Mark(errs.New("quote request not found"), errs.ErrNotFound)
	ErrPipelineUnavailable    = errs.Mark(errs.New("quote pipeline unavailable"), errs.ErrUnavailable)
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

type SubmitQuoteRequest struct {
	VenueID string
	// IdempotencyKey is optional. A repeated key with the same venue replays
	// the first result instead of starting another request.
	IdempotencyKey *uuid.UUID
}

type SubmitResult struct {
	RequestID  uuid.UUID
	IsReplayed bool
}

type QuoteRequestCommands interface {
	Submit(ctx context.Context, req SubmitQuoteRequest) (*SubmitResult, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
	Retry(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
}

type quoteRequestUseCaseImpl struct {
	venueRepo       VenueRepository
	idempotencyRepo IdempotencyRepository
	dispatcher      QuoteRequestDispatcher
	clock           clock.Clock
	idempotencyTTL  time.Duration
}

func NewQuoteRequestUseCase(
	venueRepo VenueRepository,
	idempotencyRepo IdempotencyRepository,
	dispatcher QuoteRequestDispatcher,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) QuoteRequestCommands {
	return &quoteRequestUseCaseImpl{
		venueRepo:       venueRepo,
		idempotencyRepo: idempotencyRepo,
		dispatcher:      dispatcher,
		clock:           clk,
		idempotencyTTL:  idempotencyTTL,
	}
}

func (uc *quoteRequestUseCaseImpl) Submit(ctx context.Context, req SubmitQuoteRequest) (*SubmitResult, error) {
	venueID := strings.TrimSpace(req.VenueID)
	if req.IdempotencyKey == nil {
		return uc.submit(ctx, venueID)
	}

	key := *req.IdempotencyKey
	requestHash := calculateRequestHash(venueID)
	replayed, err := uc.handleIdempotency(ctx, key, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	result, err := uc.submit(ctx, venueID)
	if err != nil {
		// a failed submission leaves nothing to replay
		if delErr := uc.idempotencyRepo.Delete(ctx, key); delErr != nil {
			err = errs.WithSecondary(err, errs.Wrapf(delErr, "release idempotency key %s", key))
		}
		return nil, err
	}
	if err := uc.idempotencyRepo.UpdateStatusCompleted(ctx, key, result.RequestID); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	return result, nil
}

func (uc *quoteRequestUseCaseImpl) handleIdempotency(ctx context.Context, key uuid.UUID, requestHash string) (*SubmitResult, error) {
	expiresAt := uc.clock.Now().Add(uc.idempotencyTTL)
	inserted, err := uc.idempotencyRepo.TryInsert(ctx, key, submitEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := uc.idempotencyRepo.Get(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case IdempotencyCompleted:
		if existing.ResultRequestID == nil {
			return nil, errs.New("completed submission missing result request ID")
		}
		return &SubmitResult{RequestID: *existing.ResultRequestID, IsReplayed: true}, nil
	case IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *quoteRequestUseCaseImpl) submit(ctx context.Context, venueID string) (*SubmitResult, error) {
	v, err := uc.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	res, err := uc.dispatcher.Dispatch(pipeline.Submit{Venue: v})
	if err != nil {
		return nil, mapDispatchErr(err)
	}
	return &SubmitResult{RequestID: res.RequestID}, nil
}

func (uc *quoteRequestUseCaseImpl) findVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	if venueID == "" {
		return nil, errs.Wrap(ErrVenueNotFound, "empty venue id")
	}
	v, err := uc.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Wrap(err, "find venue")
	}
	return v, nil
}

func (uc *quoteRequestUseCaseImpl) Dismiss(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := uc.dispatcher.Dispatch(pipeline.Dismiss{RequestID: id}); err != nil {
		return mapDispatchErr(err)
	}
	return nil
}

func (uc *quoteRequestUseCaseImpl) Retry(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := uc.dispatcher.Dispatch(pipeline.Retry{RequestID: id})
	if err != nil {
		return nil, mapDispatchErr(err)
	}
	return &SubmitResult{RequestID: res.RequestID}, nil
}

func mapDispatchErr(err error) error {
	switch {
	case errs.Is(err, pipeline.ErrUnknownRequest):
		return errs.Mark(err, ErrQuoteRequestNotFound)
	case errs.Is(err, pipeline.ErrClosed):
		return errs.Mark(err, ErrPipelineUnavailable)
	default:
		return err
	}
}

func calculateRequestHash(venueID string) string {
	hash := sha256.Sum256([]byte(submitEndpoint + "\n" + venueID))
	return hex.EncodeToString(hash[:])
}
