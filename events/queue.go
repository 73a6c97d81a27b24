package events

import "sync"

// DefaultQueueSize bounds pending events between dispatches
const DefaultQueueSize = 256

// EventQueue is a bounded FIFO of game events
// Push may be called from any goroutine; Consume belongs to the frame loop
// Overflow: oldest events are dropped when full
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	limit  int
}

func NewEventQueue() *EventQueue {
	return NewEventQueueSize(DefaultQueueSize)
}

// NewEventQueueSize creates a queue holding at most size events; size < 1 uses the default
func NewEventQueueSize(size int) *EventQueue {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &EventQueue{
		events: make([]GameEvent, 0, size),
		limit:  size,
	}
}

// Push appends an event, evicting the oldest on overflow
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == eq.limit {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
	}
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
