package quoterequest

import (
	"fmt"
	"strings"

	"event-quote-sim/internal/domain/venue"
)

const messageTemplate = "Got it — I'll request a quote from %s."

// Message is the assistant reply revealed word by word while a request is typing.
type Message struct {
	text  string
	words []string
}

func NewMessage(venueName string) Message {
	text := fmt.Sprintf(messageTemplate, venueName)
	return Message{text: text, words: strings.Fields(text)}
}

func (m Message) String() string { return m.text }
func (m Message) WordCount() int { return len(m.words) }

func (m Message) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

func (m Message) Word(i int) (string, bool) {
	if i < 0 || i >= len(m.words) {
		return "", false
	}
	return m.words[i], true
}

// QuotePreview is what a ready request shows: enough to render the quote card.
type QuotePreview struct {
	VenueID        string
	VenueName      string
	ImageURL       string
	EstimatedTotal int64
	Participants   int
	PerPerson      int64
	Currency       string
}

func NewQuotePreview(v *venue.Venue) QuotePreview {
	return QuotePreview{
		VenueID:        v.ID(),
		VenueName:      v.Name(),
		ImageURL:       v.ImageURL(),
		EstimatedTotal: v.EstimatedTotal(),
		Participants:   v.Participants(),
		PerPerson:      v.PerPersonPrice(),
		Currency:       v.Currency(),
	}
}
