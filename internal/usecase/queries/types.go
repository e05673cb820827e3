package queries

import (
	"time"

	"github.com/google/uuid"
)

// VenueView represents read-optimized venue data
type VenueView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	ImageURL       string   `json:"image_url,omitempty"`
	EstimatedTotal int64    `json:"estimated_total"`
	Participants   int      `json:"participants"`
	PerPerson      int64    `json:"per_person"`
	Currency       string   `json:"currency"`
	Rating         *float64 `json:"rating,omitempty"`
	HasPricing     bool     `json:"has_pricing"`
}

// QuotePreviewView is the quote card shown once a request is ready
type QuotePreviewView struct {
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	ImageURL       string `json:"image_url,omitempty"`
	EstimatedTotal int64  `json:"estimated_total"`
	Participants   int    `json:"participants"`
	PerPerson      int64  `json:"per_person"`
	Currency       string `json:"currency"`
}

// QuoteRequestView is one render-ready active request
type QuoteRequestView struct {
	ID             uuid.UUID         `json:"id"`
	VenueID        string            `json:"venue_id"`
	VenueName      string            `json:"venue_name"`
	Status         string            `json:"status"`
	RevealedWords  []string          `json:"revealed_words"`
	RevealedText   string            `json:"revealed_text"`
	TotalWords     int               `json:"total_words"`
	Label          string            `json:"label,omitempty"`
	SubmittedAt    time.Time         `json:"submitted_at"`
	StateEnteredAt time.Time         `json:"state_entered_at"`
	Preview        *QuotePreviewView `json:"preview,omitempty"`
}

// CompletedQuoteView is an entry of the completed-quotes collection
type CompletedQuoteView struct {
	ID             string    `json:"id"`
	RequestID      uuid.UUID `json:"request_id"`
	VenueID        string    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	ImageURL       string    `json:"image_url,omitempty"`
	EstimatedTotal int64     `json:"estimated_total"`
	Participants   int       `json:"participants"`
	PerPerson      int64     `json:"per_person"`
	Currency       string    `json:"currency"`
	CompletedAt    time.Time `json:"completed_at"`
}

type CountersView struct {
	ReadyCount int    `json:"ready_count"`
	BadgePulse bool   `json:"badge_pulse"`
	Banner     string `json:"banner"`
}

type QuoteRequestEventKind string

const (
	QuoteRequestUpdated QuoteRequestEventKind = "updated"
	QuoteRequestRemoved QuoteRequestEventKind = "removed"
	CountersChanged     QuoteRequestEventKind = "counters"
)

// QuoteRequestEvent is one entry of the live stream. Request is set only for
// updates.
type QuoteRequestEvent struct {
	Kind      QuoteRequestEventKind `json:"kind"`
	RequestID uuid.UUID             `json:"request_id,omitempty"`
	Request   *QuoteRequestView     `json:"request,omitempty"`
	Counters  CountersView          `json:"counters"`
	At        time.Time             `json:"at"`
}

// ComparisonView is the assistant's read of a quote selection
type ComparisonView struct {
	QuoteIDs           []string `json:"quote_ids"`
	Summary            string   `json:"summary"`
	SuggestedQuestions []string `json:"suggested_questions"`
}
