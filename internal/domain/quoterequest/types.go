package quoterequest

type Status string

const (
	StatusTyping     Status = "typing"
	StatusContacting Status = "contacting"
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTyping, StatusContacting, StatusGenerating, StatusReady, StatusError:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusReady || s == StatusError
}

// IsInProgress reports whether the request is still on its way to a terminal state.
func (s Status) IsInProgress() bool {
	switch s {
	case StatusTyping, StatusContacting, StatusGenerating:
		return true
	default:
		return false
	}
}

// State is the per-status payload of a request. Each variant carries only the
// data that is meaningful while the request is in that status.
type State interface {
	Status() Status
	sealed()
}

type Typing struct {
	revealed []string
}

type Contacting struct{}

type Generating struct{}

type Ready struct {
	Preview QuotePreview
}

type Failed struct {
	Cause error
}

func (Typing) Status() Status     { return StatusTyping }
func (Contacting) Status() Status { return StatusContacting }
func (Generating) Status() Status { return StatusGenerating }
func (Ready) Status() Status      { return StatusReady }
func (Failed) Status() Status     { return StatusError }

func (Typing) sealed()     {}
func (Contacting) sealed() {}
func (Generating) sealed() {}
func (Ready) sealed()      {}
func (Failed) sealed()     {}

// RevealedWords returns a copy of the words shown so far.
func (t Typing) RevealedWords() []string {
	out := make([]string, len(t.revealed))
	copy(out, t.revealed)
	return out
}
