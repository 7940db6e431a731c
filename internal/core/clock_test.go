package core

import "testing"

func TestManualClock(t *testing.T) {
	var c ManualClock
	if c.NowMs() != 0 {
		t.Errorf("NowMs() = %d, expected 0", c.NowMs())
	}
	c.Advance(100)
	c.Advance(150)
	if c.NowMs() != 250 {
		t.Errorf("NowMs() = %d, expected 250", c.NowMs())
	}
	c.Set(10)
	if c.NowMs() != 10 {
		t.Errorf("NowMs() = %d, expected 10", c.NowMs())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.NowMs()
	b := c.NowMs()
	if b < a {
		t.Errorf("NowMs() went backwards: %d then %d", a, b)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventShot}, {Kind: EventEnemyDestroyed, Value: 100}}}
	if !r.Has(EventShot) || !r.Has(EventEnemyDestroyed) {
		t.Error("Has() should find recorded events")
	}
	if r.Has(EventGameOver) {
		t.Error("Has(EventGameOver) = true, expected false")
	}
}
