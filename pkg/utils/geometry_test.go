package utils

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "完全重叠", other: Rect{X: 100, Y: 100, W: 50, H: 50}, want: true},
		{name: "部分重叠 - 右边", other: Rect{X: 120, Y: 100, W: 50, H: 50}, want: true},
		{name: "部分重叠 - 上边", other: Rect{X: 100, Y: 80, W: 50, H: 50}, want: true},
		{name: "小矩形包含在内", other: Rect{X: 110, Y: 110, W: 5, H: 5}, want: true},
		{name: "边界刚好接触 - 右边", other: Rect{X: 150, Y: 100, W: 50, H: 50}, want: false},
		{name: "边界刚好接触 - 下边", other: Rect{X: 100, Y: 150, W: 50, H: 50}, want: false},
		{name: "完全分离", other: Rect{X: 300, Y: 300, W: 10, H: 10}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects() is not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 50, H: 30}
	cx, cy := r.Center()
	if cx != 35 || cy != 35 {
		t.Errorf("Expected center (35, 35), got (%.1f, %.1f)", cx, cy)
	}
	if r.Right() != 60 || r.Bottom() != 50 {
		t.Errorf("Expected right/bottom (60, 50), got (%.1f, %.1f)", r.Right(), r.Bottom())
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if d := Distance(10, 10, 10, 10); d != 0 {
		t.Errorf("Expected distance 0, got %f", d)
	}
}

func TestNormalize(t *testing.T) {
	x, y, ok := Normalize(3, 4)
	if !ok {
		t.Fatal("Normalize(3, 4) should succeed")
	}
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Expected (0.6, 0.8), got (%f, %f)", x, y)
	}

	x, y, ok = Normalize(0, 0)
	if ok || x != 0 || y != 0 {
		t.Errorf("Normalize(0, 0) should return (0, 0, false), got (%f, %f, %v)", x, y, ok)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{name: "区间内", v: 5, lo: 0, hi: 10, want: 5},
		{name: "低于下限", v: -3, lo: 0, hi: 10, want: 0},
		{name: "高于上限", v: 12, lo: 0, hi: 10, want: 10},
		{name: "等于边界", v: 10, lo: 0, hi: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
