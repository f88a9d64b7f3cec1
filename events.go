package limelight

// EventType identifies a guide lifecycle notification.
type EventType uint8

const (
	// EventStepCompleted fires after a step has been applied to the
	// spotlight. Event.Step carries the 1-based step number.
	EventStepCompleted EventType = iota
	// EventSequenceCompleted fires once when Advance moves past the last
	// step.
	EventSequenceCompleted
)

// Event is a guide lifecycle notification.
type Event struct {
	Type EventType
	// Step is the 1-based step number for EventStepCompleted; 0 otherwise.
	Step int
}

// Handler receives dispatched events.
type Handler func(Event)

// Subscription identifies one registered handler for removal.
type Subscription int

// Dispatcher broadcasts events to any number of subscribers. Dispatch does
// not wait on subscribers beyond their synchronous return and ignores
// handlers added or removed by a handler until the next Dispatch.
type Dispatcher struct {
	handlers map[EventType][]subscription
	nextID   Subscription
}

type subscription struct {
	id Subscription
	fn Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]subscription)}
}

// Subscribe registers a handler for one event type and returns a token for
// Unsubscribe.
func (d *Dispatcher) Subscribe(t EventType, fn Handler) Subscription {
	d.nextID++
	d.handlers[t] = append(d.handlers[t], subscription{id: d.nextID, fn: fn})
	return d.nextID
}

// Unsubscribe removes a previously registered handler. No-op for unknown
// tokens.
func (d *Dispatcher) Unsubscribe(t EventType, id Subscription) {
	subs := d.handlers[t]
	for i, s := range subs {
		if s.id == id {
			d.handlers[t] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers the event to every subscriber of its type, in
// subscription order. Handlers added or removed by a handler take effect on
// the next Dispatch.
func (d *Dispatcher) Dispatch(e Event) {
	subs := append([]subscription(nil), d.handlers[e.Type]...)
	for _, s := range subs {
		s.fn(e)
	}
}
