package mathutil

import "testing"

func TestGuard(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"Zero becomes one", 0, 1},
		{"Positive passes through", 5, 5},
		{"Negative passes through", -2, -2},
		{"Fraction passes through", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.input); got != tt.want {
				t.Errorf("Guard(%v) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1.004, 1.00},
		{1.006, 1.01},
		{-1.006, -1.01},
		{2.678, 2.68},
	}

	for _, tt := range tests {
		if got := Round(tt.input); got != tt.want {
			t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.009, 0.01) {
		t.Error("WithinTolerance(100, 100.009, 0.01) = false, expected true")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Error("WithinTolerance(100, 100.02, 0.01) = true, expected false")
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(25, 200); got != 12.5 {
		t.Errorf("CalculatePercentage(25, 200) = %v, expected 12.5", got)
	}
	if got := CalculatePercentage(25, 0); got != 0 {
		t.Errorf("CalculatePercentage(25, 0) = %v, expected 0", got)
	}
}
