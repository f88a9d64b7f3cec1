package limelight

import "testing"

func TestDispatcherBroadcastsToAllSubscribers(t *testing.T) {
	d := NewDispatcher()
	got := make([]int, 0, 2)
	d.Subscribe(EventStepCompleted, func(e Event) { got = append(got, e.Step) })
	d.Subscribe(EventStepCompleted, func(e Event) { got = append(got, e.Step*10) })

	d.Dispatch(Event{Type: EventStepCompleted, Step: 3})

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("handlers received %v, want [3 30]", got)
	}
}

func TestDispatcherTypeIsolation(t *testing.T) {
	d := NewDispatcher()
	d.Subscribe(EventSequenceCompleted, func(Event) {
		t.Error("sequence handler fired for step event")
	})
	d.Dispatch(Event{Type: EventStepCompleted, Step: 1})
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	id := d.Subscribe(EventStepCompleted, func(Event) { calls++ })
	keep := 0
	d.Subscribe(EventStepCompleted, func(Event) { keep++ })

	d.Dispatch(Event{Type: EventStepCompleted})
	d.Unsubscribe(EventStepCompleted, id)
	d.Dispatch(Event{Type: EventStepCompleted})

	if calls != 1 {
		t.Errorf("unsubscribed handler ran %d times, want 1", calls)
	}
	if keep != 2 {
		t.Errorf("remaining handler ran %d times, want 2", keep)
	}
}
