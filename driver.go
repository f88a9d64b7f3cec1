package limelight

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RegionDriver holds the currently rendered spotlight box and animates it
// toward target boxes. Reads never block; writes happen only in Update,
// which the owning Spotlight calls once per frame before sampling.
//
// AnimateTo replaces any in-flight animation, restarting from whatever value
// the previous animation had reached — the most recent call wins visually.
type RegionDriver struct {
	tweens [4]*gween.Tween
	active bool

	x, y, w, h float64
	target     Rect
}

// NewRegionDriver creates a driver holding r with no animation running.
func NewRegionDriver(r Rect) *RegionDriver {
	d := &RegionDriver{}
	d.Set(r)
	return d
}

// Set overwrites the current value and target with no animation.
func (d *RegionDriver) Set(r Rect) {
	d.active = false
	d.x, d.y, d.w, d.h = r.X, r.Y, r.Width, r.Height
	d.target = r
}

// AnimateTo starts an animation from the current value to r over duration
// seconds with the given easing.
func (d *RegionDriver) AnimateTo(r Rect, duration float32, fn ease.TweenFunc) {
	d.tweens[0] = gween.New(float32(d.x), float32(r.X), duration, fn)
	d.tweens[1] = gween.New(float32(d.y), float32(r.Y), duration, fn)
	d.tweens[2] = gween.New(float32(d.w), float32(r.Width), duration, fn)
	d.tweens[3] = gween.New(float32(d.h), float32(r.Height), duration, fn)
	d.active = true
	d.target = r
}

// Update advances the in-flight animation by dt seconds.
func (d *RegionDriver) Update(dt float32) {
	if !d.active {
		return
	}
	vx, doneX := d.tweens[0].Update(dt)
	vy, _ := d.tweens[1].Update(dt)
	vw, _ := d.tweens[2].Update(dt)
	vh, doneH := d.tweens[3].Update(dt)
	d.x, d.y = float64(vx), float64(vy)
	d.w, d.h = float64(vw), float64(vh)
	if doneX && doneH {
		// All four share one duration; snap to the exact target to avoid
		// float32 residue.
		d.x, d.y = d.target.X, d.target.Y
		d.w, d.h = d.target.Width, d.target.Height
		d.active = false
	}
}

// Current returns the live, interpolated value.
func (d *RegionDriver) Current() Rect {
	return Rect{d.x, d.y, d.w, d.h}
}

// Target returns the most recently assigned target value.
func (d *RegionDriver) Target() Rect {
	return d.target
}

// ScalarDriver is the single-value counterpart of RegionDriver, used for the
// pulse offset, the overlay alpha, and the corner-rounding fraction.
type ScalarDriver struct {
	tween  *gween.Tween
	active bool

	value  float64
	target float64
}

// NewScalarDriver creates a driver holding v with no animation running.
func NewScalarDriver(v float64) *ScalarDriver {
	return &ScalarDriver{value: v, target: v}
}

// Set overwrites the current value and target with no animation.
func (d *ScalarDriver) Set(v float64) {
	d.active = false
	d.value = v
	d.target = v
}

// AnimateTo starts an animation from the current value to v over duration
// seconds with the given easing.
func (d *ScalarDriver) AnimateTo(v float64, duration float32, fn ease.TweenFunc) {
	d.tween = gween.New(float32(d.value), float32(v), duration, fn)
	d.active = true
	d.target = v
}

// Update advances the in-flight animation by dt seconds.
func (d *ScalarDriver) Update(dt float32) {
	if !d.active {
		return
	}
	v, done := d.tween.Update(dt)
	d.value = float64(v)
	if done {
		d.value = d.target
		d.active = false
	}
}

// Current returns the live, interpolated value.
func (d *ScalarDriver) Current() float64 {
	return d.value
}

// Target returns the most recently assigned target value.
func (d *ScalarDriver) Target() float64 {
	return d.target
}
