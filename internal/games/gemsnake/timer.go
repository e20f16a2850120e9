package gemsnake

import "time"

// Timer accumulates frame deltas and fires after a fixed duration.
// A repeating timer keeps the overshoot so long frames do not drift.
type Timer struct {
	duration  time.Duration
	elapsed   time.Duration
	repeating bool
	finished  bool
}

// NewTimer creates a stopped-at-zero timer.
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{duration: d, repeating: repeating}
}

// Tick advances the timer and reports whether it fired during this call.
// A repeating timer fires at most once per call.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.finished && !t.repeating {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	if t.repeating {
		t.elapsed -= t.duration
		if t.elapsed >= t.duration {
			t.elapsed = 0
		}
	} else {
		t.elapsed = t.duration
		t.finished = true
	}
	return true
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}

// SetDuration changes the period without rewinding.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Finished reports whether a one-shot timer has fired.
func (t *Timer) Finished() bool {
	return t.finished
}
