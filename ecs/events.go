package ecs

// EventType identifies a tick event.
type EventType string

const (
	// EventEaten is raised when the agent reaches the target.
	EventEaten EventType = "eaten"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue holds the events raised during the current tick. The scheduler
// flushes it after the last system runs, so an event is visible to every
// system later in the same tick and to nothing after it.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Has reports whether an event of the given type was raised this tick.
// It does not consume anything, so several systems may react to one event.
func (q *EventQueue) Has(t EventType) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Type == t {
			return true
		}
	}
	return false
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
