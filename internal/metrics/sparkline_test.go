package metrics

import (
	"math"
	"testing"
)

func TestSparklineDeterminism(t *testing.T) {
	first := Sparkline("nrr", 101.0, 12)
	second := Sparkline("nrr", 101.0, 12)

	if len(first) != 12 {
		t.Fatalf("Sparkline returned %d points, expected 12", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs across renders: %v != %v", i, first[i], second[i])
		}
	}
}

func TestSparklineSeriesDifferPerMetric(t *testing.T) {
	a := Sparkline("nrr", 101.0, 12)
	b := Sparkline("grr", 101.0, 12)

	same := true
	for i := range a[:len(a)-1] {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different metric ids produced identical noise series")
	}
}

func TestSparklineEndsAtValue(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		value  float64
		points int
	}{
		{"Positive value", "ltv-cac-ratio", 1.95, 12},
		{"Zero value", "burn-multiple", 0, 12},
		{"Negative value", "ebitda", -3200, 8},
		{"Default point count", "mrr", 12.78, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := Sparkline(tt.id, tt.value, tt.points)
			if len(series) == 0 {
				t.Fatal("empty series")
			}
			if got := series[len(series)-1]; got != tt.value {
				t.Errorf("final point = %v, expected exactly %v", got, tt.value)
			}
			for i, v := range series {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("point %d = %v", i, v)
				}
			}
		})
	}
}
