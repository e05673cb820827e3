package quote

import (
	"errors"
	"time"

	"event-quote-sim/internal/domain/quoterequest"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrZeroQuoteID   = errors.New("quote id cannot be zero")
	ErrNilRequestID  = errors.New("request id cannot be nil")
	ErrEmptyVenueRef = errors.New("quote must reference a venue")
)

// CompletedQuote is the record appended once a request reaches Ready.
type CompletedQuote struct {
	id          ulid.ULID
	requestID   uuid.UUID
	preview     quoterequest.QuotePreview
	completedAt time.Time
}

func NewCompletedQuote(id ulid.ULID, requestID uuid.UUID, preview quoterequest.QuotePreview, completedAt time.Time) (*CompletedQuote, error) {
	if id.IsZero() {
		return nil, ErrZeroQuoteID
	}
	if requestID == uuid.Nil {
		return nil, ErrNilRequestID
	}
	if preview.VenueID == "" {
		return nil, ErrEmptyVenueRef
	}
	return &CompletedQuote{
		id:          id,
		requestID:   requestID,
		preview:     preview,
		completedAt: completedAt,
	}, nil
}

func (q *CompletedQuote) ID() ulid.ULID                      { return q.id }
func (q *CompletedQuote) RequestID() uuid.UUID               { return q.requestID }
func (q *CompletedQuote) VenueID() string                    { return q.preview.VenueID }
func (q *CompletedQuote) VenueName() string                  { return q.preview.VenueName }
func (q *CompletedQuote) Preview() quoterequest.QuotePreview { return q.preview }
func (q *CompletedQuote) CompletedAt() time.Time             { return q.completedAt }

// Comparable converts a freshly generated quote for the compare view. Generated
// quotes carry no service breakdown, so they count as complete packages with
// flexible terms.
func (q *CompletedQuote) Comparable() ComparableQuote {
	p := q.preview
	return ComparableQuote{
		ID:               q.id.String(),
		VenueName:        p.VenueName,
		Attendees:        p.Participants,
		Currency:         CurrencySymbol(p.Currency),
		TotalPrice:       FormatGrouped(p.EstimatedTotal),
		PerPerson:        FormatGrouped(p.PerPerson),
		NumericTotal:     p.EstimatedTotal,
		NumericPerPerson: p.PerPerson,
		Cancellation:     CancellationFlexible,
	}
}
