package request

import (
	"strings"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/pkg/patch"
	"event-quote-sim/internal/usecase/queries"
)

type ComparableQuoteRequest struct {
	ID               string   `json:"id" binding:"required,max=64"`
	VenueName        string   `json:"venue_name" binding:"required,max=255"`
	Attendees        int      `json:"attendees" binding:"min=0"`
	Currency         string   `json:"currency" binding:"required,max=8"`
	TotalPrice       *string  `json:"total_price,omitempty"`
	PerPerson        *string  `json:"per_person,omitempty"`
	NumericTotal     int64    `json:"numeric_total" binding:"min=0"`
	NumericPerPerson int64    `json:"numeric_per_person" binding:"min=0"`
	NotIncluded      []string `json:"not_included" binding:"omitempty,max=20,dive,required"`
	Cancellation     string   `json:"cancellation" binding:"required,oneof=Flexible Standard Strict"`
}

// CompareQuotesRequest selects quotes either inline or by completed quote id.
// The combined selection must hold between 2 and 6 quotes.
type CompareQuotesRequest struct {
	Quotes            []ComparableQuoteRequest `json:"quotes" binding:"omitempty,max=6,dive"`
	CompletedQuoteIDs []string                 `json:"completed_quote_ids" binding:"omitempty,max=6,dive,required"`
}

// Display strings default to the grouped numeric amounts.
func (r ComparableQuoteRequest) ToDomain() quote.ComparableQuote {
	return quote.ComparableQuote{
		ID:               strings.TrimSpace(r.ID),
		VenueName:        strings.TrimSpace(r.VenueName),
		Attendees:        r.Attendees,
		Currency:         r.Currency,
		TotalPrice:       patch.Coalesce(r.TotalPrice, quote.FormatGrouped(r.NumericTotal)),
		PerPerson:        patch.Coalesce(r.PerPerson, quote.FormatGrouped(r.NumericPerPerson)),
		NumericTotal:     r.NumericTotal,
		NumericPerPerson: r.NumericPerPerson,
		NotIncluded:      append([]string{}, r.NotIncluded...),
		Cancellation:     quote.Cancellation(r.Cancellation),
	}
}

func (r CompareQuotesRequest) ToInput() queries.CompareInput {
	in := queries.CompareInput{
		Quotes:            make([]quote.ComparableQuote, len(r.Quotes)),
		CompletedQuoteIDs: append([]string(nil), r.CompletedQuoteIDs...),
	}
	for i, q := range r.Quotes {
		in.Quotes[i] = q.ToDomain()
	}
	return in
}
