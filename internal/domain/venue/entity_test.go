//go:build unit

package venue_test

import (
	"strings"
	"testing"

	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VenueBuilder)
	errIs  error
}

func TestVenue(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "v1", actual.ID())
		assert.Equal(t, "Château de la Roche", actual.Name())
		assert.Equal(t, "/venues/venue1.png", actual.ImageURL())
		assert.Equal(t, int64(4500), actual.EstimatedTotal())
		assert.Equal(t, 30, actual.Participants())
		assert.Equal(t, "EUR", actual.Currency())
		assert.True(t, actual.HasPricing())
	})

	t.Run("identity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty id",
				mutate: func(b *builder.VenueBuilder) { b.WithID("   ") },
				errIs:  venue.ErrEmptyVenueID,
			},
			{
				name:   "empty name",
				mutate: func(b *builder.VenueBuilder) { b.WithName("") },
				errIs:  venue.ErrEmptyVenueName,
			},
			{
				name:   "name at maximum length",
				mutate: func(b *builder.VenueBuilder) { b.WithName(strings.Repeat("é", venue.MaxVenueNameLength)) },
			},
			{
				name:   "name above maximum length",
				mutate: func(b *builder.VenueBuilder) { b.WithName(strings.Repeat("a", venue.MaxVenueNameLength+1)) },
				errIs:  venue.ErrVenueNameTooLong,
			},
		})
	})

	t.Run("pricing validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero total",
				mutate: func(b *builder.VenueBuilder) { b.WithEstimatedTotal(0) },
			},
			{
				name:   "negative total",
				mutate: func(b *builder.VenueBuilder) { b.WithEstimatedTotal(-1) },
				errIs:  venue.ErrNegativeTotal,
			},
			{
				name:   "zero participants",
				mutate: func(b *builder.VenueBuilder) { b.WithParticipants(0) },
				errIs:  venue.ErrInvalidParticipants,
			},
			{
				name:   "rating above five",
				mutate: func(b *builder.VenueBuilder) { b.WithRating(5.1) },
				errIs:  venue.ErrInvalidRating,
			},
			{
				name:   "currency that is not a code",
				mutate: func(b *builder.VenueBuilder) { b.WithCurrency("euro") },
				errIs:  venue.ErrInvalidCurrencyCode,
			},
		})
	})

	t.Run("defaults apply when pricing is missing", func(t *testing.T) {
		actual, err := builder.NewVenueBuilder().WithoutPricing().WithCurrency("").BuildDomain()
		require.NoError(t, err)

		assert.False(t, actual.HasPricing())
		assert.Equal(t, venue.DefaultEstimatedTotal, actual.EstimatedTotal())
		assert.Equal(t, venue.DefaultParticipants, actual.Participants())
		assert.Equal(t, venue.DefaultCurrency, actual.Currency())
	})

	t.Run("currency is normalised", func(t *testing.T) {
		actual, err := builder.NewVenueBuilder().WithCurrency(" gbp ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "GBP", actual.Currency())
	})

	t.Run("rating is copied", func(t *testing.T) {
		actual, err := builder.NewVenueBuilder().BuildDomain()
		require.NoError(t, err)

		r := actual.Rating()
		require.NotNil(t, r)
		*r = 1
		assert.InDelta(t, 4.2, *actual.Rating(), 1e-9)
	})
}

func TestVenue_PerPersonPrice(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		participants int
		want         int64
	}{
		{name: "even split", total: 4500, participants: 30, want: 150},
		{name: "rounds down below half", total: 5200, participants: 30, want: 173},
		{name: "rounds up at half", total: 45, participants: 2, want: 23},
		{name: "single participant", total: 3800, participants: 1, want: 3800},
		{name: "free venue", total: 0, participants: 30, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := builder.NewVenueBuilder().
				WithEstimatedTotal(tt.total).
				WithParticipants(tt.participants).
				BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.PerPersonPrice())
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewVenueBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
