package pipeline

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/domain/quoterequest"
	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/pkg/clock"
	"event-quote-sim/internal/pkg/config"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/pkg/random"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrUnknownRequest = errs.Mark(errors.New("unknown quote request"), errs.ErrNotFound)
	ErrClosed         = errs.Mark(errors.New("quote pipeline is closed"), errs.ErrUnavailable)
	ErrInvalidConfig  = errors.New("invalid pipeline config")
)

// maxRetainedOrigins bounds how many removed requests stay retryable.
const maxRetainedOrigins = 256

type entry struct {
	req   *quoterequest.QuoteRequest
	timer clock.Timer
}

// Pipeline owns every in-flight quote request. Commands and timer callbacks
// both go through mu, so there is a single writer at any time.
type Pipeline struct {
	cfg     config.PipelineConfig
	sched   clock.Scheduler
	rnd     random.Source
	logger  *slog.Logger
	entropy io.Reader

	mu         sync.Mutex
	closed     bool
	active     map[uuid.UUID]*entry
	order      []uuid.UUID
	origins    map[uuid.UUID]*venue.Venue // removed, still retryable
	originFIFO []uuid.UUID
	completed  []*quote.CompletedQuote
	readyCount int
	pulse      bool
	pulseSeq   uint64
	pulseTimer clock.Timer
	hub        *hub
}

func New(cfg config.PipelineConfig, sched clock.Scheduler, rnd random.Source, logger *slog.Logger) (*Pipeline, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if sched == nil || rnd == nil {
		return nil, fmt.Errorf("%w: scheduler and random source are required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "quote_pipeline")
	return &Pipeline{
		cfg:     cfg,
		sched:   sched,
		rnd:     rnd,
		logger:  logger,
		entropy: ulid.Monotonic(rand.Reader, 0),
		active:  make(map[uuid.UUID]*entry),
		origins: make(map[uuid.UUID]*venue.Venue),
		hub:     newHub(logger),
	}, nil
}

func validateConfig(cfg config.PipelineConfig) error {
	switch {
	case cfg.TypewriterInterval <= 0:
		return fmt.Errorf("%w: typewriter interval must be positive", ErrInvalidConfig)
	case cfg.ContactingDelay < 0, cfg.GeneratingDelay < 0, cfg.SuccessBannerTTL < 0, cfg.BadgePulse < 0:
		return fmt.Errorf("%w: delays cannot be negative", ErrInvalidConfig)
	case cfg.FailureProbability < 0 || cfg.FailureProbability > 1:
		return fmt.Errorf("%w: failure probability %v is outside [0, 1]", ErrInvalidConfig, cfg.FailureProbability)
	case cfg.EventBuffer < 0:
		return fmt.Errorf("%w: event buffer cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Dispatch applies one command.
func (p *Pipeline) Dispatch(cmd Command) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return Result{}, ErrClosed
	}
	return cmd.apply(p, p.sched.Now())
}

func (p *Pipeline) start(req *quoterequest.QuoteRequest) {
	e := &entry{req: req}
	id := req.ID()
	p.active[id] = e
	p.order = append(p.order, id)

	p.logger.Debug("quote request submitted", "request_id", id, "venue_id", req.Venue().ID())
	p.publishUpdate(e, req.SubmittedAt())
	p.schedule(e, p.cfg.TypewriterInterval, p.revealWord)
}

// remove drops a request and cancels its pending timer. A timer that already
// fired and is waiting on mu finds the entry gone and does nothing. With
// retain set, a request that did not reach Ready stays retryable.
func (p *Pipeline) remove(id uuid.UUID, now time.Time, retain bool) {
	e, ok := p.active[id]
	if !ok {
		return
	}
	if retain && e.req.Status() != quoterequest.StatusReady {
		p.retainOrigin(id, e.req.Venue())
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(p.active, id)
	p.order = slices.DeleteFunc(p.order, func(x uuid.UUID) bool { return x == id })

	p.logger.Debug("quote request removed", "request_id", id, "status", e.req.Status())
	p.hub.publish(Event{Kind: EventRemoved, RequestID: id, Counters: p.counters(), At: now})
}

// origin resolves the venue a request was made for, whether it is active or
// was removed and retained.
func (p *Pipeline) origin(id uuid.UUID) (*venue.Venue, bool) {
	if e, ok := p.active[id]; ok {
		return e.req.Venue(), true
	}
	v, ok := p.origins[id]
	return v, ok
}

func (p *Pipeline) retainOrigin(id uuid.UUID, v *venue.Venue) {
	p.origins[id] = v
	p.originFIFO = append(p.originFIFO, id)
	for len(p.originFIFO) > maxRetainedOrigins {
		delete(p.origins, p.originFIFO[0])
		p.originFIFO = p.originFIFO[1:]
	}
}

func (p *Pipeline) forgetOrigin(id uuid.UUID) {
	if _, ok := p.origins[id]; !ok {
		return
	}
	delete(p.origins, id)
	p.originFIFO = slices.DeleteFunc(p.originFIFO, func(x uuid.UUID) bool { return x == id })
}

func (p *Pipeline) schedule(e *entry, d time.Duration, step func(*entry, time.Time)) {
	id := e.req.ID()
	e.timer = p.sched.After(d, func() { p.fire(id, e, step) })
}

func (p *Pipeline) fire(id uuid.UUID, e *entry, step func(*entry, time.Time)) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("quote pipeline callback panicked", "request_id", id, "panic", r)
		}
	}()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if cur, ok := p.active[id]; !ok || cur != e {
		return
	}
	step(e, p.sched.Now())
}

func (p *Pipeline) revealWord(e *entry, now time.Time) {
	done, err := e.req.RevealNextWord()
	if err != nil {
		p.logger.Error("typewriter tick rejected", "request_id", e.req.ID(), "error", err)
		return
	}
	p.publishUpdate(e, now)
	if !done {
		p.schedule(e, p.cfg.TypewriterInterval, p.revealWord)
		return
	}

	if err := e.req.StartContacting(now); err != nil {
		p.logger.Error("cannot start contacting", "request_id", e.req.ID(), "error", err)
		return
	}
	p.logTransition(e)
	p.publishUpdate(e, now)
	p.schedule(e, p.cfg.ContactingDelay, p.startGenerating)
}

func (p *Pipeline) startGenerating(e *entry, now time.Time) {
	if err := e.req.StartGenerating(now); err != nil {
		p.logger.Error("cannot start generating", "request_id", e.req.ID(), "error", err)
		return
	}
	p.logTransition(e)
	p.publishUpdate(e, now)
	p.schedule(e, p.cfg.GeneratingDelay, p.finish)
}

// finish draws once from the random source: below the failure probability the
// simulated provider fails.
func (p *Pipeline) finish(e *entry, now time.Time) {
	e.timer = nil
	if p.rnd.Float64() < p.cfg.FailureProbability {
		p.fail(e, now)
		return
	}

	preview, err := e.req.Complete(now)
	if err != nil {
		p.logger.Error("cannot complete quote request", "request_id", e.req.ID(), "error", err)
		return
	}
	p.readyCount++
	p.recordCompleted(e.req.ID(), preview, now)
	p.startPulse(now)
	p.logTransition(e)
	p.publishUpdate(e, now)

	if p.cfg.AutoDismissReady {
		p.schedule(e, p.cfg.SuccessBannerTTL, func(e *entry, now time.Time) {
			p.remove(e.req.ID(), now, false)
		})
	}
}

func (p *Pipeline) fail(e *entry, now time.Time) {
	if err := e.req.Fail(now, quoterequest.ErrSimulatedProviderFailure); err != nil {
		p.logger.Error("cannot fail quote request", "request_id", e.req.ID(), "error", err)
		return
	}
	p.logger.Warn("simulated provider failure",
		"request_id", e.req.ID(),
		"venue_id", e.req.Venue().ID(),
	)
	p.publishUpdate(e, now)
	if p.cfg.RemoveFailed {
		p.remove(e.req.ID(), now, true)
	}
}

func (p *Pipeline) recordCompleted(requestID uuid.UUID, preview quoterequest.QuotePreview, now time.Time) {
	id, err := ulid.New(ulid.Timestamp(now), p.entropy)
	if err != nil {
		// monotonic entropy overflows only after 2^80 ids in one millisecond
		id = ulid.Make()
	}
	q, err := quote.NewCompletedQuote(id, requestID, preview, now)
	if err != nil {
		p.logger.Error("cannot record completed quote", "request_id", requestID, "error", err)
		return
	}
	p.completed = append(p.completed, q)
}

// startPulse raises the badge flag and restarts its timer.
func (p *Pipeline) startPulse(now time.Time) {
	if p.pulseTimer != nil {
		p.pulseTimer.Stop()
	}
	p.pulse = true
	p.pulseSeq++
	seq := p.pulseSeq
	p.hub.publish(Event{Kind: EventCounters, Counters: p.counters(), At: now})

	p.pulseTimer = p.sched.After(p.cfg.BadgePulse, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed || p.pulseSeq != seq {
			return
		}
		p.pulse = false
		p.pulseTimer = nil
		p.hub.publish(Event{Kind: EventCounters, Counters: p.counters(), At: p.sched.Now()})
	})
}

func (p *Pipeline) publishUpdate(e *entry, now time.Time) {
	p.hub.publish(Event{
		Kind:      EventUpdated,
		RequestID: e.req.ID(),
		Request:   e.req.Snapshot(),
		Counters:  p.counters(),
		At:        now,
	})
}

func (p *Pipeline) logTransition(e *entry) {
	p.logger.Debug("quote request transition",
		"request_id", e.req.ID(),
		"status", e.req.Status(),
		"elapsed", e.req.StateEnteredAt().Sub(e.req.SubmittedAt()),
	)
}

func (p *Pipeline) counters() Counters {
	return Counters{ReadyCount: p.readyCount, BadgePulse: p.pulse}
}

// Active returns snapshots of the active requests in submission order.
func (p *Pipeline) Active() []*quoterequest.QuoteRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*quoterequest.QuoteRequest, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.active[id].req.Snapshot())
	}
	return out
}

func (p *Pipeline) Get(id uuid.UUID) (*quoterequest.QuoteRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.active[id]
	if !ok {
		return nil, false
	}
	return e.req.Snapshot(), true
}

// Completed returns completed quotes in completion order.
func (p *Pipeline) Completed() []*quote.CompletedQuote {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.completed)
}

func (p *Pipeline) Counters() Counters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counters()
}

// Subscribe registers a listener. cancel closes the channel and may be called
// more than once. After Close the returned channel is already closed.
func (p *Pipeline) Subscribe(buffer int) (events <-chan Event, cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if buffer <= 0 {
		buffer = p.cfg.EventBuffer
	}
	id, ch := p.hub.subscribe(buffer)
	if p.closed {
		p.hub.unsubscribe(id)
		return ch, func() {}
	}
	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.hub.unsubscribe(id)
	}
}

// Close stops every pending timer and closes all subscriptions. Further
// commands fail with ErrClosed.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, e := range p.active {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	if p.pulseTimer != nil {
		p.pulseTimer.Stop()
	}
	released := p.hub.size()
	p.hub.closeAll()
	p.logger.Info("quote pipeline closed",
		"active", len(p.active),
		"ready_count", p.readyCount,
		"subscribers_released", released,
	)
}
