package event

// History accumulates every published event in memory, in publish order, for
// post-game reporting.
type History struct {
	events []GameEvent
}

func NewHistory() *History {
	return &History{}
}

func (h *History) HandleEvent(event GameEvent) error {
	h.events = append(h.events, event)
	return nil
}

// Events returns the append-only history. Callers must not mutate it.
func (h *History) Events() []GameEvent {
	return h.events
}
