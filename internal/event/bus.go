package event

import "log"

// Observer receives published game events. A non-nil error is logged by the
// bus and never interrupts delivery to the remaining observers.
type Observer interface {
	HandleEvent(event GameEvent) error
}

// Bus dispatches events to observers per activity kind, synchronously and in
// subscription order. It is in-memory and scoped to one session.
type Bus struct {
	observers map[ActivityType][]Observer
}

func NewBus() *Bus {
	return &Bus{observers: make(map[ActivityType][]Observer)}
}

// Subscribe registers an observer for one activity kind. Kinds get their
// registry lazily, so subscribing to a previously-unknown kind succeeds.
func (b *Bus) Subscribe(kind ActivityType, observer Observer) {
	b.observers[kind] = append(b.observers[kind], observer)
}

// SubscribeAll registers an observer for every activity kind.
func (b *Bus) SubscribeAll(observer Observer) {
	for _, kind := range AllActivityTypes() {
		b.Subscribe(kind, observer)
	}
}

// Unsubscribe removes an observer from one kind's registry. Removing an
// observer that was never subscribed is a no-op.
func (b *Bus) Unsubscribe(kind ActivityType, observer Observer) {
	registered := b.observers[kind]
	for i, existing := range registered {
		if existing == observer {
			b.observers[kind] = append(registered[:i:i], registered[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every observer subscribed to its kind and
// returns once all have been invoked. Observer failures are logged, not
// propagated, so one bad observer cannot corrupt a turn.
func (b *Bus) Publish(kind ActivityType, event GameEvent) {
	for _, observer := range b.observers[kind] {
		if err := observer.HandleEvent(event); err != nil {
			log.Printf("event observer error for %s: %v", kind, err)
		}
	}
}
