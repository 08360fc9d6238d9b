package core

import "time"

// Repeater paces a held action (such as dragging a brush) to a fixed rate.
type Repeater struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewRepeater fires at most rate times per second. Non-positive rates fall
// back to 60.
func NewRepeater(rate int) *Repeater {
	r := &Repeater{now: time.Now}
	r.SetRate(rate)
	return r
}

// SetRate changes the firing rate. It is safe to call from the main loop.
func (r *Repeater) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	r.interval = time.Second / time.Duration(rate)
}

// Ready reports whether the action may fire now and records the firing.
func (r *Repeater) Ready() bool {
	now := r.now()
	if !r.last.IsZero() && now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now
	return true
}

// Release forgets the last firing so the next press fires immediately.
func (r *Repeater) Release() { r.last = time.Time{} }
