package limelight

import "testing"

func TestJanitorReleaseAllReverseOrder(t *testing.T) {
	j := NewJanitor()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		j.Track(func() { order = append(order, i) })
	}

	j.ReleaseAll()

	if len(order) != 3 {
		t.Fatalf("released %d resources, want 3", len(order))
	}
	for i, want := range []int{3, 2, 1} {
		if order[i] != want {
			t.Errorf("release order[%d] = %d, want %d", i, order[i], want)
		}
	}
	if j.Len() != 0 {
		t.Errorf("Len = %d after ReleaseAll, want 0", j.Len())
	}
}

func TestJanitorReleaseAllIdempotent(t *testing.T) {
	j := NewJanitor()
	calls := 0
	j.Track(func() { calls++ })

	j.ReleaseAll()
	j.ReleaseAll()

	if calls != 1 {
		t.Errorf("release action ran %d times, want 1", calls)
	}
}

func TestJanitorTrackKeyedReplacesPrevious(t *testing.T) {
	j := NewJanitor()
	var released []string
	j.TrackKeyed("slot", func() { released = append(released, "first") })
	j.TrackKeyed("slot", func() { released = append(released, "second") })

	if len(released) != 1 || released[0] != "first" {
		t.Fatalf("replacing a key released %v, want [first]", released)
	}
	if j.Len() != 1 {
		t.Fatalf("Len = %d, want 1", j.Len())
	}

	j.Release("slot")
	if len(released) != 2 || released[1] != "second" {
		t.Errorf("Release ran %v, want [first second]", released)
	}
}

func TestJanitorReleaseUnknownKeyNoop(t *testing.T) {
	j := NewJanitor()
	j.Track(func() { t.Error("unkeyed resource must not release") })
	j.Release("missing")
	j.Release("")
	if j.Len() != 1 {
		t.Errorf("Len = %d, want 1", j.Len())
	}
	j.items = nil // do not run the failing action at cleanup
}

func TestJanitorReleasedResourceNotRunAgain(t *testing.T) {
	j := NewJanitor()
	calls := 0
	j.TrackKeyed("timer", func() { calls++ })

	j.Release("timer")
	j.ReleaseAll()

	if calls != 1 {
		t.Errorf("keyed action ran %d times, want 1", calls)
	}
}
