package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 150, 0.5); got != 75 {
		t.Errorf("Lerp(0, 150, 0.5) = %v, 期望 75", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %v, 期望 10", got)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  int64
		duration int64
		expected float64
	}{
		{"开始", 0, 400, 0},
		{"一半", 200, 400, 0.5},
		{"超过时长截断", 1000, 400, 1},
		{"负数截断", -50, 400, 0},
		{"零时长", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, tt.duration); got != tt.expected {
				t.Errorf("Progress(%d, %d) = %v, 期望 %v", tt.elapsed, tt.duration, got, tt.expected)
			}
		})
	}
}
