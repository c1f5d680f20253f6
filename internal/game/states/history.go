package states

import "time"

// Transition is one recorded phase change.
type Transition struct {
	From      GamePhase
	To        GamePhase
	Player    int
	Turn      int
	Timestamp time.Time
	Reason    string
}

// DefaultHistorySize bounds a History created with a non-positive size.
const DefaultHistorySize = 1000

// History keeps the most recent phase transitions of a match.
type History struct {
	entries []Transition
	maxSize int
}

func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultHistorySize
	}
	return &History{entries: make([]Transition, 0, 64), maxSize: maxSize}
}

// Record appends a transition, dropping the oldest entries beyond the bound.
// It reports whether the transition is one the phase graph allows.
func (h *History) Record(t Transition) bool {
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	h.entries = append(h.entries, t)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
	return t.From.CanTransitionTo(t.To)
}

// Entries returns a copy of the recorded transitions, oldest first.
func (h *History) Entries() []Transition {
	out := make([]Transition, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }
