package pipeline

import (
	"time"

	"event-quote-sim/internal/domain/quoterequest"
	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/pkg/errs"

	"github.com/google/uuid"
)

// Command is a mutation of the active set. Commands are applied one at a time
// under the pipeline lock.
type Command interface {
	apply(p *Pipeline, now time.Time) (Result, error)
}

type Result struct {
	RequestID uuid.UUID
}

// Submit starts a new request for a resolved venue.
type Submit struct {
	Venue *venue.Venue
}

// Dismiss removes a request. Unknown ids are ignored.
type Dismiss struct {
	RequestID uuid.UUID
}

// Retry discards a request and submits a fresh one for the venue it was
// originally made for. The old id is consumed: retrying it again is unknown.
type Retry struct {
	RequestID uuid.UUID
}

func (c Submit) apply(p *Pipeline, now time.Time) (Result, error) {
	req, err := quoterequest.NewQuoteRequest(c.Venue, now)
	if err != nil {
		return Result{}, errs.Wrap(err, "submit quote request")
	}
	p.start(req)
	return Result{RequestID: req.ID()}, nil
}

func (c Dismiss) apply(p *Pipeline, now time.Time) (Result, error) {
	p.remove(c.RequestID, now, true)
	return Result{RequestID: c.RequestID}, nil
}

func (c Retry) apply(p *Pipeline, now time.Time) (Result, error) {
	v, ok := p.origin(c.RequestID)
	if !ok {
		return Result{}, errs.Wrapf(ErrUnknownRequest, "retry %s", c.RequestID)
	}
	p.remove(c.RequestID, now, false)
	p.forgetOrigin(c.RequestID)
	return Submit{Venue: v}.apply(p, now)
}
