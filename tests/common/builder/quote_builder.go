//go:build unit || e2e

package builder

import (
	"time"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/domain/quoterequest"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type ComparableQuoteBuilder struct {
	q quote.ComparableQuote
}

func NewComparableQuoteBuilder() *ComparableQuoteBuilder {
	return &ComparableQuoteBuilder{q: quote.ComparableQuote{
		ID:               "q1",
		VenueName:        "L'Hôtel Abbaye du Golf",
		Attendees:        30,
		Currency:         "€",
		TotalPrice:       "5 749",
		PerPerson:        "192",
		NumericTotal:     5749,
		NumericPerPerson: 192,
		NotIncluded:      []string{"Dinner", "Accommodation"},
		Cancellation:     quote.CancellationFlexible,
	}}
}

func (b *ComparableQuoteBuilder) WithID(id string) *ComparableQuoteBuilder {
	b.q.ID = id
	return b
}

func (b *ComparableQuoteBuilder) WithVenueName(name string) *ComparableQuoteBuilder {
	b.q.VenueName = name
	return b
}

// WithPrices sets both numeric and display values.
func (b *ComparableQuoteBuilder) WithPrices(total, perPerson int64) *ComparableQuoteBuilder {
	b.q.NumericTotal = total
	b.q.NumericPerPerson = perPerson
	b.q.TotalPrice = quote.FormatGrouped(total)
	b.q.PerPerson = quote.FormatGrouped(perPerson)
	return b
}

func (b *ComparableQuoteBuilder) WithNotIncluded(services ...string) *ComparableQuoteBuilder {
	b.q.NotIncluded = services
	return b
}

func (b *ComparableQuoteBuilder) WithCancellation(c quote.Cancellation) *ComparableQuoteBuilder {
	b.q.Cancellation = c
	return b
}

func (b *ComparableQuoteBuilder) Build() quote.ComparableQuote {
	out := b.q
	out.NotIncluded = append([]string(nil), b.q.NotIncluded...)
	return out
}

// SampleQuotes are the six quotes of the compare screen, keyed by id.
func SampleQuotes() map[string]quote.ComparableQuote {
	list := []quote.ComparableQuote{
		NewComparableQuoteBuilder().Build(),
		NewComparableQuoteBuilder().WithID("q2").WithPrices(6120, 204).
			WithNotIncluded("Dinner", "Meeting room", "Accommodation").Build(),
		NewComparableQuoteBuilder().WithID("q3").WithVenueName("La Maison du Val").WithPrices(16806, 560).
			WithNotIncluded().WithCancellation(quote.CancellationStrict).Build(),
		NewComparableQuoteBuilder().WithID("q4").WithVenueName("La Maison du Val").WithPrices(15200, 507).
			WithNotIncluded().WithCancellation(quote.CancellationStandard).Build(),
		NewComparableQuoteBuilder().WithID("q5").WithVenueName("Château de la Roche").WithPrices(12400, 413).
			WithNotIncluded("Dinner", "Accommodation", "Meeting room").Build(),
		NewComparableQuoteBuilder().WithID("q6").WithVenueName("Château de la Roche").WithPrices(11900, 397).
			WithNotIncluded("Dinner", "Meeting room").WithCancellation(quote.CancellationStandard).Build(),
	}
	out := make(map[string]quote.ComparableQuote, len(list))
	for _, q := range list {
		out[q.ID] = q
	}
	return out
}

// SelectSampleQuotes returns the named sample quotes in the given order.
func SelectSampleQuotes(ids ...string) []quote.ComparableQuote {
	all := SampleQuotes()
	out := make([]quote.ComparableQuote, 0, len(ids))
	for _, id := range ids {
		out = append(out, all[id])
	}
	return out
}

type CompletedQuoteBuilder struct {
	ID          ulid.ULID
	RequestID   uuid.UUID
	Preview     quoterequest.QuotePreview
	CompletedAt time.Time
}

func NewCompletedQuoteBuilder() *CompletedQuoteBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 5, 0, time.UTC)
	return &CompletedQuoteBuilder{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()),
		RequestID: uuid.New(),
		Preview: quoterequest.QuotePreview{
			VenueID:        "v1",
			VenueName:      "Château de la Roche",
			ImageURL:       "/venues/venue1.png",
			EstimatedTotal: 4500,
			Participants:   30,
			PerPerson:      150,
			Currency:       "EUR",
		},
		CompletedAt: now,
	}
}

func (b *CompletedQuoteBuilder) With(mutate func(*CompletedQuoteBuilder)) *CompletedQuoteBuilder {
	mutate(b)
	return b
}

func (b *CompletedQuoteBuilder) BuildDomain() (*quote.CompletedQuote, error) {
	return quote.NewCompletedQuote(b.ID, b.RequestID, b.Preview, b.CompletedAt)
}
