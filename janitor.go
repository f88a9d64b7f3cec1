package limelight

// cleanup is one tracked resource: a release action and an optional key for
// targeted release.
type cleanup struct {
	key     string
	release func()
}

// Janitor tracks release actions for resources owned by one Spotlight
// (subscriptions, timers, visible primitives) and releases them
// deterministically. Release order is the reverse of acquisition order.
//
// A Janitor is not safe for concurrent use; like everything else in
// limelight it lives on the single render thread.
type Janitor struct {
	items []cleanup
}

// NewJanitor creates an empty janitor.
func NewJanitor() *Janitor {
	return &Janitor{}
}

// Track registers a release action to run on ReleaseAll.
func (j *Janitor) Track(release func()) {
	j.items = append(j.items, cleanup{release: release})
}

// TrackKeyed registers a release action under a key. If the key is already
// tracked, the previous action is released first and replaced, so a key
// names at most one live resource.
func (j *Janitor) TrackKeyed(key string, release func()) {
	j.Release(key)
	j.items = append(j.items, cleanup{key: key, release: release})
}

// Release runs and removes the action tracked under key. No-op if the key is
// not tracked.
func (j *Janitor) Release(key string) {
	if key == "" {
		return
	}
	for i, c := range j.items {
		if c.key == key {
			copy(j.items[i:], j.items[i+1:])
			j.items[len(j.items)-1] = cleanup{}
			j.items = j.items[:len(j.items)-1]
			c.release()
			return
		}
	}
}

// ReleaseAll runs every tracked action in reverse acquisition order and
// empties the janitor. Safe to call more than once; the second call is a
// no-op.
func (j *Janitor) ReleaseAll() {
	for i := len(j.items) - 1; i >= 0; i-- {
		j.items[i].release()
	}
	j.items = nil
}

// Len returns the number of tracked resources.
func (j *Janitor) Len() int {
	return len(j.items)
}
