package converter

import (
	"strings"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/domain/quoterequest"
	"event-quote-sim/internal/usecase/pipeline"
	"event-quote-sim/internal/usecase/queries"
)

func QuoteRequestToView(req *quoterequest.QuoteRequest) *queries.QuoteRequestView {
	words := req.RevealedWords()
	view := &queries.QuoteRequestView{
		ID:             req.ID(),
		VenueID:        req.Venue().ID(),
		VenueName:      req.Venue().Name(),
		Status:         req.Status().String(),
		RevealedWords:  words,
		RevealedText:   strings.Join(words, " "),
		TotalWords:     req.Message().WordCount(),
		Label:          req.Label(),
		SubmittedAt:    req.SubmittedAt(),
		StateEnteredAt: req.StateEnteredAt(),
	}
	if p, ok := req.Preview(); ok {
		view.Preview = PreviewToView(p)
	}
	return view
}

func PreviewToView(p quoterequest.QuotePreview) *queries.QuotePreviewView {
	return &queries.QuotePreviewView{
		VenueID:        p.VenueID,
		VenueName:      p.VenueName,
		ImageURL:       p.ImageURL,
		EstimatedTotal: p.EstimatedTotal,
		Participants:   p.Participants,
		PerPerson:      p.PerPerson,
		Currency:       p.Currency,
	}
}

func CompletedQuoteToView(q *quote.CompletedQuote) *queries.CompletedQuoteView {
	p := q.Preview()
	return &queries.CompletedQuoteView{
		ID:             q.ID().String(),
		RequestID:      q.RequestID(),
		VenueID:        p.VenueID,
		VenueName:      p.VenueName,
		ImageURL:       p.ImageURL,
		EstimatedTotal: p.EstimatedTotal,
		Participants:   p.Participants,
		PerPerson:      p.PerPerson,
		Currency:       p.Currency,
		CompletedAt:    q.CompletedAt(),
	}
}

func CountersToView(c pipeline.Counters) *queries.CountersView {
	return &queries.CountersView{ReadyCount: c.ReadyCount, BadgePulse: c.BadgePulse}
}

func EventToView(ev pipeline.Event) *queries.QuoteRequestEvent {
	out := &queries.QuoteRequestEvent{
		RequestID: ev.RequestID,
		Counters:  *CountersToView(ev.Counters),
		At:        ev.At,
	}
	switch ev.Kind {
	case pipeline.EventUpdated:
		out.Kind = queries.QuoteRequestUpdated
	case pipeline.EventRemoved:
		out.Kind = queries.QuoteRequestRemoved
	default:
		out.Kind = queries.CountersChanged
	}
	if ev.Request != nil {
		out.Request = QuoteRequestToView(ev.Request)
	}
	return out
}
