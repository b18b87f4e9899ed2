package game

import "testing"

func TestTickClockAdvance(t *testing.T) {
	c := NewTickClock(60)
	if c.Now() != 0 {
		t.Fatalf("新时钟应从 0 开始，实际 %d", c.Now())
	}

	for i := 0; i < 3; i++ {
		c.Advance()
	}
	if got := c.Now(); got != 50 {
		t.Errorf("3 帧后应为 50ms，实际 %d", got)
	}

	for i := 3; i < 60; i++ {
		c.Advance()
	}
	if got := c.Now(); got != 1000 {
		t.Errorf("60 帧后应为 1000ms，实际 %d", got)
	}
	if c.Ticks() != 60 {
		t.Errorf("Ticks() = %d, want 60", c.Ticks())
	}
}

func TestTickClockDefaultsTo60(t *testing.T) {
	c := NewTickClock(0)
	for i := 0; i < 60; i++ {
		c.Advance()
	}
	if c.Now() != 1000 {
		t.Errorf("默认 60 帧/秒，60 帧后应为 1000ms，实际 %d", c.Now())
	}
}

func TestWallClockIsMonotonic(t *testing.T) {
	c := NewWallClock()
	a := c.Now()
	b := c.Now()
	if b < a {
		t.Errorf("时钟倒退: %d -> %d", a, b)
	}
}
