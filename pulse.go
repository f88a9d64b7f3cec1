package limelight

import "github.com/tanema/gween/ease"

// pulser oscillates the pulse driver between 0 and an amplitude while the
// spotlight is active. The loop is frame-stepped: each update either burns
// down the half-period wait or reverses direction, so an external Disable
// between half-periods cancels the pending resumption before the next
// animation starts.
type pulser struct {
	driver     *ScalarDriver
	active     func() bool
	halfPeriod float32

	enabled bool
	amount  float64
	high    bool
	wait    float32
}

func newPulser(driver *ScalarDriver, active func() bool, halfPeriod float32) *pulser {
	return &pulser{driver: driver, active: active, halfPeriod: halfPeriod}
}

// Enable arms the oscillation toward amount. No-op if already enabled. The
// first animation starts on the next active update, so an inactive
// spotlight never drives the pulse.
func (p *pulser) Enable(amount float64) {
	if p.enabled {
		return
	}
	p.enabled = true
	p.amount = amount
	p.high = false
	p.wait = 0
}

// Disable stops the loop, cancels the pending half-period wait, and forces
// the driver to exactly 0 so the shape is never left expanded.
func (p *pulser) Disable() {
	p.enabled = false
	p.wait = 0
	p.driver.Set(0)
}

// Enabled reports whether the loop is running.
func (p *pulser) Enabled() bool {
	return p.enabled
}

// update advances the wait timer by dt seconds and reverses direction at
// each half-period boundary. Never runs while the spotlight is inactive.
func (p *pulser) update(dt float32) {
	if !p.enabled || !p.active() {
		return
	}
	p.wait -= dt
	if p.wait > 0 {
		return
	}
	p.wait += p.halfPeriod
	p.high = !p.high
	target := 0.0
	if p.high {
		target = p.amount
	}
	p.driver.AnimateTo(target, p.halfPeriod, ease.InOutQuad)
}
