//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/usecase/commands"
	"event-quote-sim/internal/usecase/pipeline"
	"event-quote-sim/tests/common/builder"
	commandsmock "event-quote-sim/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	venues      *commandsmock.MockVenueRepository
	idempotency *commandsmock.MockIdempotencyRepository
	dispatcher  *commandsmock.MockQuoteRequestDispatcher
	clock       *clock.MockClock
	uc          commands.QuoteRequestCommands
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		venues:      commandsmock.NewMockVenueRepository(ctrl),
		idempotency: commandsmock.NewMockIdempotencyRepository(ctrl),
		dispatcher:  commandsmock.NewMockQuoteRequestDispatcher(ctrl),
		clock:       clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewQuoteRequestUseCase(f.venues, f.idempotency, f.dispatcher, f.clock, 24*time.Hour)
	return f
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	v := builder.NewVenueBuilder().MustBuildDomain()

	t.Run("resolves the venue and dispatches a submit", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.venues.EXPECT().FindByID(ctx, "v1").Return(v, nil)
		f.dispatcher.EXPECT().Dispatch(pipeline.Submit{Venue: v}).Return(pipeline.Result{RequestID: id}, nil)

		got, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: " v1 "})
		require.NoError(t, err)
		assert.Equal(t, id, got.RequestID)
		assert.False(t, got.IsReplayed)
	})

	t.Run("unknown venue is NotFound and nothing is dispatched", func(t *testing.T) {
		f := newFixture(t)
		f.venues.EXPECT().FindByID(ctx, "nope").
			Return(nil, infra.WrapRepoErr("venue not found", errors.New("no rows"), infra.KindNotFound))

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "nope"})
		assert.ErrorIs(t, err, commands.ErrVenueNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("empty venue id is NotFound without a lookup", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "  "})
		assert.True(t, errs.Is(err, commands.ErrVenueNotFound))
	})

	t.Run("store failure is not reported as NotFound", func(t *testing.T) {
		f := newFixture(t)
		f.venues.EXPECT().FindByID(ctx, "v1").Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1"})
		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrVenueNotFound))
	})

	t.Run("closed pipeline is unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.venues.EXPECT().FindByID(ctx, "v1").Return(v, nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Return(pipeline.Result{}, pipeline.ErrClosed)

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1"})
		assert.True(t, errs.Is(err, commands.ErrPipelineUnavailable))
	})
}

func TestSubmitIdempotency(t *testing.T) {
	ctx := context.Background()
	v := builder.NewVenueBuilder().MustBuildDomain()
	key := uuid.New()

	t.Run("first use records the result", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		expiresAt := f.clock.Now().Add(24 * time.Hour)
		gomock.InOrder(
			f.idempotency.EXPECT().TryInsert(ctx, key, "POST /api/quote-requests", gomock.Any(), expiresAt).Return(true, nil),
			f.venues.EXPECT().FindByID(ctx, "v1").Return(v, nil),
			f.dispatcher.EXPECT().Dispatch(gomock.Any()).Return(pipeline.Result{RequestID: id}, nil),
			f.idempotency.EXPECT().UpdateStatusCompleted(ctx, key, id).Return(nil),
		)

		got, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1", IdempotencyKey: &key})
		require.NoError(t, err)
		assert.Equal(t, id, got.RequestID)
		assert.False(t, got.IsReplayed)
	})

	t.Run("repeat with the same venue replays without dispatching", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		var hash string
		f.idempotency.EXPECT().TryInsert(ctx, key, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
				hash = requestHash
				return false, nil
			})
		f.idempotency.EXPECT().Get(ctx, key).DoAndReturn(func(context.Context, uuid.UUID) (*commands.IdempotencyRecord, error) {
			return &commands.IdempotencyRecord{Key: key, Status: commands.IdempotencyCompleted, RequestHash: hash, ResultRequestID: &id}, nil
		})

		got, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1", IdempotencyKey: &key})
		require.NoError(t, err)
		assert.Equal(t, id, got.RequestID)
		assert.True(t, got.IsReplayed)
	})

	t.Run("repeat with another venue is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.idempotency.EXPECT().TryInsert(ctx, key, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.idempotency.EXPECT().Get(ctx, key).
			Return(&commands.IdempotencyRecord{Key: key, Status: commands.IdempotencyCompleted, RequestHash: "other"}, nil)

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1", IdempotencyKey: &key})
		assert.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})

	t.Run("concurrent use of a key is in progress", func(t *testing.T) {
		f := newFixture(t)
		var hash string
		f.idempotency.EXPECT().TryInsert(ctx, key, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
				hash = requestHash
				return false, nil
			})
		f.idempotency.EXPECT().Get(ctx, key).DoAndReturn(func(context.Context, uuid.UUID) (*commands.IdempotencyRecord, error) {
			return &commands.IdempotencyRecord{Key: key, Status: commands.IdempotencyProcessing, RequestHash: hash}, nil
		})

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1", IdempotencyKey: &key})
		assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("failed submission releases the key", func(t *testing.T) {
		f := newFixture(t)
		f.idempotency.EXPECT().TryInsert(ctx, key, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.venues.EXPECT().FindByID(ctx, "gone").
			Return(nil, infra.WrapRepoErr("venue not found", errors.New("no rows"), infra.KindNotFound))
		f.idempotency.EXPECT().Delete(ctx, key).Return(nil)

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "gone", IdempotencyKey: &key})
		assert.ErrorIs(t, err, commands.ErrVenueNotFound)
	})

	t.Run("failure to release the key is reported alongside the cause", func(t *testing.T) {
		f := newFixture(t)
		f.idempotency.EXPECT().TryInsert(ctx, key, gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.venues.EXPECT().FindByID(ctx, "gone").
			Return(nil, infra.WrapRepoErr("venue not found", errors.New("no rows"), infra.KindNotFound))
		f.idempotency.EXPECT().Delete(ctx, key).
			Return(infra.WrapRepoErr("delete idempotency key", errors.New("store down"), infra.KindStoreFailure))

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "gone", IdempotencyKey: &key})
		require.ErrorIs(t, err, commands.ErrVenueNotFound)
		assert.False(t, errs.Is(err, commands.ErrIdempotencyCheckFailed))
		assert.Contains(t, fmt.Sprintf("%+v", err), "release idempotency key")
		assert.Contains(t, fmt.Sprintf("%+v", err), "store down")
	})

	t.Run("store failure is an idempotency check failure", func(t *testing.T) {
		f := newFixture(t)
		f.idempotency.EXPECT().TryInsert(ctx, key, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, assert.AnError)

		_, err := f.uc.Submit(ctx, commands.SubmitQuoteRequest{VenueID: "v1", IdempotencyKey: &key})
		assert.True(t, errs.Is(err, commands.ErrIdempotencyCheckFailed))
	})
}

func TestDismiss(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches a dismiss", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.dispatcher.EXPECT().Dispatch(pipeline.Dismiss{RequestID: id}).Return(pipeline.Result{RequestID: id}, nil)

		assert.NoError(t, f.uc.Dismiss(ctx, id))
	})

	t.Run("canceled context dispatches nothing", func(t *testing.T) {
		f := newFixture(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, f.uc.Dismiss(cctx, uuid.New()), context.Canceled)
	})
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the new request id", func(t *testing.T) {
		f := newFixture(t)
		oldID, newID := uuid.New(), uuid.New()
		f.dispatcher.EXPECT().Dispatch(pipeline.Retry{RequestID: oldID}).Return(pipeline.Result{RequestID: newID}, nil)

		got, err := f.uc.Retry(ctx, oldID)
		require.NoError(t, err)
		assert.Equal(t, newID, got.RequestID)
	})

	t.Run("unknown id is NotFound", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.dispatcher.EXPECT().Dispatch(pipeline.Retry{RequestID: id}).
			Return(pipeline.Result{}, errs.Wrapf(pipeline.ErrUnknownRequest, "retry %s", id))

		_, err := f.uc.Retry(ctx, id)
		assert.True(t, errs.Is(err, commands.ErrQuoteRequestNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
