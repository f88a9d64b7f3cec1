package limelight

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func rectNear(a, b Rect, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Width-b.Width) <= tol &&
		math.Abs(a.Height-b.Height) <= tol
}

func TestRegionDriverSetIsInstant(t *testing.T) {
	d := NewRegionDriver(Rect{})
	d.Set(Rect{10, 20, 30, 40})

	if got := d.Current(); got != (Rect{10, 20, 30, 40}) {
		t.Errorf("Current = %+v, want the set value", got)
	}
	if got := d.Target(); got != (Rect{10, 20, 30, 40}) {
		t.Errorf("Target = %+v, want the set value", got)
	}
}

func TestRegionDriverAnimateToReachesTarget(t *testing.T) {
	d := NewRegionDriver(Rect{})
	d.AnimateTo(Rect{100, 200, 50, 80}, 1.0, ease.Linear)

	// Exact halves to avoid float32 accumulation drift.
	d.Update(0.5)
	if got := d.Current(); !rectNear(got, Rect{50, 100, 25, 40}, 0.5) {
		t.Errorf("midpoint Current = %+v, want ~{50 100 25 40}", got)
	}

	d.Update(0.5)
	if got := d.Current(); got != (Rect{100, 200, 50, 80}) {
		t.Errorf("final Current = %+v, want exact target", got)
	}
}

func TestRegionDriverRetargetsFromCurrent(t *testing.T) {
	d := NewRegionDriver(Rect{})
	d.AnimateTo(Rect{100, 0, 0, 0}, 1.0, ease.Linear)
	d.Update(0.5)

	// Most recent call wins; the new tween starts from ~50.
	d.AnimateTo(Rect{60, 0, 0, 0}, 1.0, ease.Linear)
	if got := d.Current().X; math.Abs(got-50) > 0.5 {
		t.Fatalf("Current.X = %f after retarget, want ~50 (unchanged until Update)", got)
	}

	d.Update(0.5)
	if got := d.Current().X; math.Abs(got-55) > 0.5 {
		t.Errorf("Current.X = %f, want ~55 (halfway from 50 to 60)", got)
	}
	if got := d.Target().X; got != 60 {
		t.Errorf("Target.X = %f, want 60", got)
	}
}

func TestRegionDriverReadNeverMutates(t *testing.T) {
	d := NewRegionDriver(Rect{1, 2, 3, 4})
	for i := 0; i < 10; i++ {
		_ = d.Current()
	}
	if got := d.Current(); got != (Rect{1, 2, 3, 4}) {
		t.Errorf("Current = %+v after repeated reads, want unchanged", got)
	}
}

func TestScalarDriverAnimateAndSnap(t *testing.T) {
	d := NewScalarDriver(0)
	d.AnimateTo(10, 1.0, ease.Linear)

	d.Update(0.25)
	if got := d.Current(); math.Abs(got-2.5) > 0.1 {
		t.Errorf("Current = %f at t=0.25, want ~2.5", got)
	}

	d.Update(0.75)
	if got := d.Current(); got != 10 {
		t.Errorf("final Current = %f, want exactly 10", got)
	}
}

func TestScalarDriverSetCancelsAnimation(t *testing.T) {
	d := NewScalarDriver(0)
	d.AnimateTo(10, 1.0, ease.Linear)
	d.Update(0.5)

	d.Set(0)
	d.Update(0.5)

	if got := d.Current(); got != 0 {
		t.Errorf("Current = %f after Set(0), want exactly 0", got)
	}
}
