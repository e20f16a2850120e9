package gemsnake

import (
	"testing"
	"time"
)

func TestOneShotTimer(t *testing.T) {
	tm := NewTimer(100*time.Millisecond, false)

	if tm.Tick(50 * time.Millisecond) {
		t.Error("fired early")
	}
	if !tm.Tick(50 * time.Millisecond) {
		t.Error("should fire at its duration")
	}
	if tm.Tick(50 * time.Millisecond) {
		t.Error("one-shot timer fired twice")
	}
	if !tm.Finished() {
		t.Error("Finished() should be true")
	}

	tm.Reset()
	if tm.Finished() || tm.Remaining() != 100*time.Millisecond {
		t.Errorf("Reset left timer at %v remaining", tm.Remaining())
	}
}

func TestRepeatingTimerKeepsOvershoot(t *testing.T) {
	tm := NewTimer(100*time.Millisecond, true)

	if tm.Tick(60 * time.Millisecond) {
		t.Fatal("fired early")
	}
	if !tm.Tick(60 * time.Millisecond) {
		t.Fatal("should fire after 120ms")
	}
	if got := tm.Remaining(); got != 80*time.Millisecond {
		t.Errorf("Remaining() = %v, want 80ms", got)
	}
	if !tm.Tick(80 * time.Millisecond) {
		t.Error("overshoot should count toward the next period")
	}
}

func TestRepeatingTimerFiresOncePerTick(t *testing.T) {
	tm := NewTimer(100*time.Millisecond, true)

	if !tm.Tick(350 * time.Millisecond) {
		t.Fatal("should fire")
	}
	if got := tm.Remaining(); got != 100*time.Millisecond {
		t.Errorf("long frame should not queue extra firings, remaining = %v", got)
	}
}

func TestTimerSetDuration(t *testing.T) {
	tm := NewTimer(200*time.Millisecond, true)
	tm.Tick(120 * time.Millisecond)

	tm.SetDuration(100 * time.Millisecond)
	if !tm.Tick(0) {
		t.Error("shortened period should fire with elapsed time already past it")
	}
}
