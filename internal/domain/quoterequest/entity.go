package quoterequest

import (
	"errors"
	"time"

	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNilVenue          = errors.New("venue is required")
	ErrInvalidTransition = errors.New("invalid quote request transition")
	ErrNothingToReveal   = errors.New("message is already fully revealed")
)

// ErrSimulatedProviderFailure is the cause recorded on requests that the
// simulated provider rejected.
var ErrSimulatedProviderFailure = errs.Mark(errors.New("venue did not respond"), errs.ErrSimulatedProviderFailure)

type QuoteRequest struct {
	id             uuid.UUID
	venue          *venue.Venue
	message        Message
	state          State
	submittedAt    time.Time
	stateEnteredAt time.Time
}

func NewQuoteRequest(v *venue.Venue, now time.Time) (*QuoteRequest, error) {
	if v == nil {
		return nil, ErrNilVenue
	}
	return &QuoteRequest{
		id:             uuid.New(),
		venue:          v,
		message:        NewMessage(v.Name()),
		state:          Typing{},
		submittedAt:    now,
		stateEnteredAt: now,
	}, nil
}

// RevealNextWord appends one word of the reply. done is true once the whole
// message is visible.
func (q *QuoteRequest) RevealNextWord() (done bool, err error) {
	t, ok := q.state.(Typing)
	if !ok {
		return false, errs.Wrapf(ErrInvalidTransition, "reveal word while %s", q.Status())
	}
	word, ok := q.message.Word(len(t.revealed))
	if !ok {
		return true, ErrNothingToReveal
	}
	revealed := make([]string, len(t.revealed), len(t.revealed)+1)
	copy(revealed, t.revealed)
	q.state = Typing{revealed: append(revealed, word)}
	return len(revealed)+1 == q.message.WordCount(), nil
}

func (q *QuoteRequest) StartContacting(now time.Time) error {
	if q.Status() != StatusTyping {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", q.Status(), StatusContacting)
	}
	q.enter(Contacting{}, now)
	return nil
}

func (q *QuoteRequest) StartGenerating(now time.Time) error {
	if q.Status() != StatusContacting {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", q.Status(), StatusGenerating)
	}
	q.enter(Generating{}, now)
	return nil
}

func (q *QuoteRequest) Complete(now time.Time) (QuotePreview, error) {
	if q.Status() != StatusGenerating {
		return QuotePreview{}, errs.Wrapf(ErrInvalidTransition, "%s -> %s", q.Status(), StatusReady)
	}
	preview := NewQuotePreview(q.venue)
	q.enter(Ready{Preview: preview}, now)
	return preview, nil
}

func (q *QuoteRequest) Fail(now time.Time, cause error) error {
	if q.Status() != StatusGenerating {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", q.Status(), StatusError)
	}
	if cause == nil {
		cause = ErrSimulatedProviderFailure
	}
	q.enter(Failed{Cause: cause}, now)
	return nil
}

func (q *QuoteRequest) enter(s State, now time.Time) {
	q.state = s
	q.stateEnteredAt = now
}

// Label is the progress line shown under the request.
func (q *QuoteRequest) Label() string {
	switch q.state.(type) {
	case Contacting:
		return "Contacting " + q.venue.Name() + "…"
	case Generating:
		return "Generating quote…"
	case Ready:
		return "Quote ready"
	case Failed:
		return "Couldn't get a quote from " + q.venue.Name()
	default:
		return ""
	}
}

func (q *QuoteRequest) ID() uuid.UUID             { return q.id }
func (q *QuoteRequest) Venue() *venue.Venue       { return q.venue }
func (q *QuoteRequest) Message() Message          { return q.message }
func (q *QuoteRequest) State() State              { return q.state }
func (q *QuoteRequest) Status() Status            { return q.state.Status() }
func (q *QuoteRequest) SubmittedAt() time.Time    { return q.submittedAt }
func (q *QuoteRequest) StateEnteredAt() time.Time { return q.stateEnteredAt }

// RevealedWords is the whole message once the request has left the typing state.
func (q *QuoteRequest) RevealedWords() []string {
	if t, ok := q.state.(Typing); ok {
		return t.RevealedWords()
	}
	return q.message.Words()
}

func (q *QuoteRequest) Preview() (QuotePreview, bool) {
	if r, ok := q.state.(Ready); ok {
		return r.Preview, true
	}
	return QuotePreview{}, false
}

func (q *QuoteRequest) FailureCause() error {
	if f, ok := q.state.(Failed); ok {
		return f.Cause
	}
	return nil
}

// Snapshot returns a copy safe to hand to readers outside the owning lock.
func (q *QuoteRequest) Snapshot() *QuoteRequest {
	c := *q
	if t, ok := q.state.(Typing); ok {
		c.state = Typing{revealed: t.RevealedWords()}
	}
	return &c
}
