package clock

import (
	"testing"
	"time"
)

func TestRealClock(t *testing.T) {
	c := &RealClock{}
	now := c.Now()
	if time.Since(now) > time.Minute {
		t.Errorf("RealClock.Now() = %v, too far from system time", now)
	}
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := NewFakeClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(90 * time.Minute)
	want := start.Add(90 * time.Minute)
	if !c.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", c.Now(), want)
	}
}
