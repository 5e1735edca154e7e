package observability

import "context"

// NoOpObserver discards all events. Library entry points use it when the
// caller supplies no observer.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MultiObserver delivers each event to every member in order. The gateway
// pairs the configured log sink with the metrics recorder this way.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver drops nil and no-op members and flattens nested
// MultiObservers, so repeated wrapping never delivers an event twice through
// the same path.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]Observer, 0, len(observers))}
	for _, obs := range observers {
		m.add(obs)
	}
	return m
}

func (m *MultiObserver) add(obs Observer) {
	switch o := obs.(type) {
	case nil, NoOpObserver, *NoOpObserver:
	case *MultiObserver:
		if o != nil {
			m.observers = append(m.observers, o.observers...)
		}
	default:
		m.observers = append(m.observers, obs)
	}
}

// Len reports the number of members that receive events.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
