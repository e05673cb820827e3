package pipeline

import (
	"log/slog"
	"time"

	"event-quote-sim/internal/domain/quoterequest"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventUpdated  EventKind = "updated"
	EventRemoved  EventKind = "removed"
	EventCounters EventKind = "counters"
)

type Counters struct {
	ReadyCount int
	BadgePulse bool
}

// Event is published on every visible change. Request is a snapshot and is
// nil for removals and counter-only events.
type Event struct {
	Kind      EventKind
	RequestID uuid.UUID
	Request   *quoterequest.QuoteRequest
	Counters  Counters
	At        time.Time
}

// hub fans events out to subscribers. All methods are called with the
// pipeline lock held.
type hub struct {
	logger *slog.Logger
	nextID int
	subs   map[int]chan Event
}

func newHub(logger *slog.Logger) *hub {
	return &hub{logger: logger, subs: make(map[int]chan Event)}
}

func (h *hub) subscribe(buffer int) (int, chan Event) {
	if buffer < 0 {
		buffer = 0
	}
	h.nextID++
	ch := make(chan Event, buffer)
	h.subs[h.nextID] = ch
	return h.nextID, ch
}

func (h *hub) unsubscribe(id int) {
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// publish never blocks; a subscriber that is not keeping up loses the event.
func (h *hub) publish(ev Event) {
	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("dropping quote request event for slow subscriber",
				"subscriber", id,
				"kind", ev.Kind,
				"request_id", ev.RequestID,
			)
		}
	}
}

func (h *hub) closeAll() {
	for id := range h.subs {
		h.unsubscribe(id)
	}
}

func (h *hub) size() int {
	return len(h.subs)
}
