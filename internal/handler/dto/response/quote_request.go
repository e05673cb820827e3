package response

import (
	"event-quote-sim/internal/usecase/queries"
)

type QuotePreviewResponse struct {
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	ImageURL       string `json:"image_url,omitempty"`
	EstimatedTotal int64  `json:"estimated_total"`
	Participants   int    `json:"participants"`
	PerPerson      int64  `json:"per_person"`
	Currency       string `json:"currency"`
}

type QuoteRequestResponse struct {
	ID             string                `json:"id"`
	VenueID        string                `json:"venue_id"`
	VenueName      string                `json:"venue_name"`
	Status         string                `json:"status"`
	RevealedWords  []string              `json:"revealed_words"`
	RevealedText   string                `json:"revealed_text"`
	TotalWords     int                   `json:"total_words"`
	Label          string                `json:"label,omitempty"`
	SubmittedAt    int64                 `json:"submitted_at"`
	StateEnteredAt int64                 `json:"state_entered_at"`
	Preview        *QuotePreviewResponse `json:"preview,omitempty" copier:"-"`
}

func FromQuoteRequestView(v *queries.QuoteRequestView) *QuoteRequestResponse {
	res := copyInto[QuoteRequestResponse](v)
	if res.RevealedWords == nil {
		res.RevealedWords = []string{}
	}
	if v.Preview != nil {
		res.Preview = copyInto[QuotePreviewResponse](v.Preview)
	}
	return res
}

func FromQuoteRequestList(items []*queries.QuoteRequestView) []*QuoteRequestResponse {
	res := make([]*QuoteRequestResponse, len(items))
	for i, it := range items {
		res[i] = FromQuoteRequestView(it)
	}
	return res
}

type SubmitQuoteResponse struct {
	ID       string `json:"id"`
	Replayed bool   `json:"replayed,omitempty"`
}

type CountersResponse struct {
	ReadyCount int    `json:"ready_count"`
	BadgePulse bool   `json:"badge_pulse"`
	Banner     string `json:"banner"`
}

func FromCountersView(v *queries.CountersView) *CountersResponse {
	return &CountersResponse{
		ReadyCount: v.ReadyCount,
		BadgePulse: v.BadgePulse,
		Banner:     v.Banner,
	}
}

type QuoteRequestEventResponse struct {
	Kind      string                `json:"kind"`
	RequestID string                `json:"request_id"`
	Request   *QuoteRequestResponse `json:"request,omitempty"`
	Counters  CountersResponse      `json:"counters"`
	At        int64                 `json:"at"`
}

func FromQuoteRequestEvent(ev *queries.QuoteRequestEvent) *QuoteRequestEventResponse {
	res := &QuoteRequestEventResponse{
		Kind:     string(ev.Kind),
		Counters: *FromCountersView(&ev.Counters),
		At:       ev.At.UnixMilli(),
	}
	if ev.Kind != queries.CountersChanged {
		res.RequestID = ev.RequestID.String()
	}
	if ev.Request != nil {
		res.Request = FromQuoteRequestView(ev.Request)
	}
	return res
}
