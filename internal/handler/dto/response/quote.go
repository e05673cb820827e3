package response

import (
	"event-quote-sim/internal/usecase/queries"
)

type CompletedQuoteResponse struct {
	ID             string `json:"id"`
	RequestID      string `json:"request_id"`
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	ImageURL       string `json:"image_url,omitempty"`
	EstimatedTotal int64  `json:"estimated_total"`
	Participants   int    `json:"participants"`
	PerPerson      int64  `json:"per_person"`
	Currency       string `json:"currency"`
	CompletedAt    int64  `json:"completed_at"`
}

func FromCompletedQuoteList(items []*queries.CompletedQuoteView) []*CompletedQuoteResponse {
	res := make([]*CompletedQuoteResponse, len(items))
	for i, it := range items {
		res[i] = copyInto[CompletedQuoteResponse](it)
	}
	return res
}

type ComparisonResponse struct {
	QuoteIDs           []string `json:"quote_ids"`
	Summary            string   `json:"summary"`
	SuggestedQuestions []string `json:"suggested_questions"`
}

func FromComparisonView(v *queries.ComparisonView) *ComparisonResponse {
	res := &ComparisonResponse{
		QuoteIDs:           v.QuoteIDs,
		Summary:            v.Summary,
		SuggestedQuestions: v.SuggestedQuestions,
	}
	if res.SuggestedQuestions == nil {
		res.SuggestedQuestions = []string{}
	}
	return res
}
