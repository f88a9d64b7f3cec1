package limelight

import "fmt"

// WorldPoint is a world-space focus target: a position and a world-space
// radius for the spotlight.
type WorldPoint struct {
	Position Vec3
	Radius   float64
}

// Step is one unit of a guided sequence. Exactly one of UI, World, or
// Object should be set; if more than one is, the highest-priority one wins
// (UI, then World, then Object), the rest are dropped, and a warning is
// logged. A step with no target is consumed with a warning.
type Step struct {
	UI     UIElement
	World  *WorldPoint
	Object TrackedObject

	// Text is the caption shown under the spotlight; empty means none.
	Text string
	// Shape, when non-nil, switches the cutout shape before focusing.
	Shape *Shape
	// Padding grows the box around a UI target, in pixels.
	Padding float64
	// Pulse is the oscillation amplitude in pixels; 0 disables the pulse.
	// The pulse is reset on every step, never inherited.
	Pulse float64
}

// targetCount returns how many target fields are set.
func (st Step) targetCount() int {
	n := 0
	if st.UI != nil {
		n++
	}
	if st.World != nil {
		n++
	}
	if st.Object != nil {
		n++
	}
	return n
}

// Guide traverses an ordered step list, reconfiguring one Spotlight per
// step and broadcasting lifecycle events. The cursor is 1-based while
// running: 0 means not started, len(steps)+1 means completed.
type Guide struct {
	spotlight  *Spotlight
	dispatcher *Dispatcher

	steps     []Step
	cursor    int
	completed bool
}

// NewGuide creates a guide bound to the given spotlight.
func NewGuide(spotlight *Spotlight) *Guide {
	return &Guide{
		spotlight:  spotlight,
		dispatcher: NewDispatcher(),
	}
}

// Spotlight returns the bound spotlight.
func (g *Guide) Spotlight() *Spotlight {
	return g.spotlight
}

// Events returns the guide's event dispatcher for subscriptions beyond the
// OnStepCompleted/OnSequenceCompleted conveniences.
func (g *Guide) Events() *Dispatcher {
	return g.dispatcher
}

// OnStepCompleted subscribes fn to step-completed notifications. fn
// receives the 1-based step number.
func (g *Guide) OnStepCompleted(fn func(step int)) Subscription {
	return g.dispatcher.Subscribe(EventStepCompleted, func(e Event) { fn(e.Step) })
}

// OnSequenceCompleted subscribes fn to the sequence-completed notification.
func (g *Guide) OnSequenceCompleted(fn func()) Subscription {
	return g.dispatcher.Subscribe(EventSequenceCompleted, func(Event) { fn() })
}

// Cursor returns the current 1-based step number, 0 before Start.
func (g *Guide) Cursor() int {
	return g.cursor
}

// SetSteps replaces the step list and resets the cursor. Nothing is shown,
// hidden, or focused until Start or Advance.
func (g *Guide) SetSteps(steps []Step) *Guide {
	g.steps = steps
	g.cursor = 0
	g.completed = false
	return g
}

// Start shows the spotlight and advances to the first step.
func (g *Guide) Start() error {
	g.spotlight.Show()
	return g.Advance()
}

// Advance moves to the next step and applies it to the spotlight: shape
// first, then the target (priority UI > World > Object), then the pulse,
// which is re-enabled or disabled on every step. A StepCompleted event is
// broadcast once the step is applied.
//
// Past the last step the spotlight is hidden and SequenceCompleted is
// broadcast, exactly once no matter how many further Advance calls arrive.
//
// An object target without a defined extent returns ErrUnsupportedTarget
// (wrapped); the step is abandoned, no event fires, and the spotlight keeps
// its previous display state.
func (g *Guide) Advance() error {
	g.cursor++
	if g.cursor > len(g.steps) {
		if !g.completed {
			g.completed = true
			g.spotlight.Hide()
			g.dispatcher.Dispatch(Event{Type: EventSequenceCompleted})
		}
		return nil
	}

	step := g.steps[g.cursor-1]
	debugf("guide: step %d/%d", g.cursor, len(g.steps))
	if n := step.targetCount(); n > 1 {
		warnf("guide step %d sets %d targets; using the highest-priority one", g.cursor, n)
	}

	if step.Shape != nil {
		g.spotlight.SetShape(*step.Shape)
	}

	switch {
	case step.UI != nil:
		g.spotlight.FocusUI(step.UI, step.Padding, step.Text)
	case step.World != nil:
		g.spotlight.FocusWorld(step.World.Position, step.World.Radius, step.Text)
	case step.Object != nil:
		if err := g.spotlight.FollowObject(step.Object, step.Text); err != nil {
			return fmt.Errorf("guide step %d: %w", g.cursor, err)
		}
	default:
		warnf("guide step %d has no target; skipping focus", g.cursor)
	}

	// Reset the pulse on every step so amplitude changes take effect; Pulse
	// is a no-op while already enabled.
	g.spotlight.StopPulse()
	if step.Pulse > 0 {
		g.spotlight.Pulse(step.Pulse)
	}

	g.dispatcher.Dispatch(Event{Type: EventStepCompleted, Step: g.cursor})
	return nil
}

// Skip hides the spotlight without touching the cursor and without firing
// SequenceCompleted. A later Advance resumes from where the guide left off.
func (g *Guide) Skip() {
	g.spotlight.Hide()
}
