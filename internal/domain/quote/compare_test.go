//go:build unit

package quote_test

import (
	"testing"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{
			name: "all six sample quotes",
			ids:  []string{"q1", "q2", "q3", "q4", "q5", "q6"},
			want: "For your 30-person event, La Maison du Val offers the most complete package (all-inclusive), " +
				"while L'Hôtel Abbaye du Golf comes in 66% cheaper at € 5 749 but doesn't include dinner or accommodation. " +
				"Per-person prices range from € 192 to € 560.",
		},
		{
			name: "no all-inclusive option",
			ids:  []string{"q1", "q2"},
			want: "For your 30-person event, L'Hôtel Abbaye du Golf is the most affordable at € 192/person. " +
				"Per-person prices range from € 192 to € 204.",
		},
		{
			name: "cheapest is not the flexible one",
			ids:  []string{"q6", "q5"},
			want: "For your 30-person event, Château de la Roche is the most affordable at € 397/person. " +
				"Per-person prices range from € 397 to € 413. Château de la Roche has the most flexible cancellation terms.",
		},
		{
			name: "all-inclusive against a partial package",
			ids:  []string{"q4", "q5"},
			want: "For your 30-person event, La Maison du Val offers the most complete package (all-inclusive), " +
				"while Château de la Roche comes in 18% cheaper at € 12 400 but doesn't include dinner or accommodation. " +
				"Per-person prices range from € 413 to € 507.",
		},
		{
			name: "cheapest is itself all-inclusive",
			ids:  []string{"q4", "q3"},
			want: "For your 30-person event, La Maison du Val is the most affordable at € 507/person. " +
				"Per-person prices range from € 507 to € 560.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quote.Summary(builder.SelectSampleQuotes(tt.ids...))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("single quote has no summary", func(t *testing.T) {
		assert.Empty(t, quote.Summary(builder.SelectSampleQuotes("q1")))
		assert.Empty(t, quote.Summary(nil))
	})

	t.Run("input order is preserved", func(t *testing.T) {
		quotes := builder.SelectSampleQuotes("q3", "q1")
		_ = quote.Summary(quotes)
		assert.Equal(t, "q3", quotes[0].ID)
	})
}

func TestSuggestedQuestions(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "all six sample quotes",
			ids:  []string{"q1", "q2", "q3", "q4", "q5", "q6"},
			want: []string{
				"Why is L'Hôtel Abbaye du Golf € 11 057 cheaper than La Maison du Val?",
				"What would it cost to add dinner to L'Hôtel Abbaye du Golf?",
				"What are the cancellation terms for La Maison du Val?",
			},
		},
		{
			name: "no strict terms falls back to availability",
			ids:  []string{"q1", "q2"},
			want: []string{
				"Why is L'Hôtel Abbaye du Golf € 371 cheaper than L'Hôtel Abbaye du Golf?",
				"What would it cost to add dinner to L'Hôtel Abbaye du Golf?",
				"Which option is safest for availability?",
			},
		},
		{
			name: "dinner question names the first quote without dinner",
			ids:  []string{"q3", "q6"},
			want: []string{
				"Why is Château de la Roche € 4 906 cheaper than La Maison du Val?",
				"What would it cost to add dinner to Château de la Roche?",
				"What are the cancellation terms for La Maison du Val?",
			},
		},
		{
			name: "all-inclusive pair",
			ids:  []string{"q4", "q3"},
			want: []string{
				"Why is La Maison du Val € 1 606 cheaper than La Maison du Val?",
				"What are the cancellation terms for La Maison du Val?",
				"Which option is safest for availability?",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quote.SuggestedQuestions(builder.SelectSampleQuotes(tt.ids...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SuggestedQuestions() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("single quote has no questions", func(t *testing.T) {
		got := quote.SuggestedQuestions(builder.SelectSampleQuotes("q5"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name   string
		quotes []quote.ComparableQuote
		errIs  error
	}{
		{name: "pair", quotes: builder.SelectSampleQuotes("q1", "q2")},
		{name: "all six", quotes: builder.SelectSampleQuotes("q1", "q2", "q3", "q4", "q5", "q6")},
		{name: "one", quotes: builder.SelectSampleQuotes("q1"), errIs: quote.ErrTooFewQuotes},
		{
			name:   "seven",
			quotes: append(builder.SelectSampleQuotes("q1", "q2", "q3", "q4", "q5", "q6"), builder.NewComparableQuoteBuilder().WithID("q7").Build()),
			errIs:  quote.ErrTooManyQuotes,
		},
		{name: "duplicate", quotes: builder.SelectSampleQuotes("q1", "q1"), errIs: quote.ErrDuplicateQuoteID},
		{
			name: "unknown cancellation",
			quotes: []quote.ComparableQuote{
				builder.NewComparableQuoteBuilder().Build(),
				builder.NewComparableQuoteBuilder().WithID("q2").WithCancellation("Lenient").Build(),
			},
			errIs: quote.ErrInvalidCancellation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := quote.ValidateSelection(tt.quotes)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFormatGrouped(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		192:      "192",
		5749:     "5 749",
		16806:    "16 806",
		1000000:  "1 000 000",
		-11057:   "-11 057",
		123456:   "123 456",
		12345678: "12 345 678",
	}
	for in, want := range tests {
		assert.Equal(t, want, quote.FormatGrouped(in), "FormatGrouped(%d)", in)
	}
}

func TestCompletedQuote(t *testing.T) {
	t.Run("builds and converts for comparison", func(t *testing.T) {
		b := builder.NewCompletedQuoteBuilder()
		q, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID, q.ID())
		assert.Equal(t, "v1", q.VenueID())

		c := q.Comparable()
		assert.Equal(t, q.ID().String(), c.ID)
		assert.Equal(t, "€", c.Currency)
		assert.Equal(t, "4 500", c.TotalPrice)
		assert.Equal(t, "150", c.PerPerson)
		assert.Equal(t, quote.CancellationFlexible, c.Cancellation)
		assert.Empty(t, c.NotIncluded)
	})

	t.Run("requires a venue", func(t *testing.T) {
		_, err := builder.NewCompletedQuoteBuilder().
			With(func(b *builder.CompletedQuoteBuilder) { b.Preview.VenueID = "" }).
			BuildDomain()
		require.ErrorIs(t, err, quote.ErrEmptyVenueRef)
	})
}
