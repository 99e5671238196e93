package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pretty", false},
		{"csv", false},
		{"json", true},
		{"", true},
		{"Pretty", true},
	}

	for _, tt := range tests {
		err := ValidateOutputFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestCheckPercent(t *testing.T) {
	if w := CheckPercent("winRate", 22); w != "" {
		t.Errorf("CheckPercent(22) = %q, expected no warning", w)
	}
	if w := CheckPercent("winRate", 0); w != "" {
		t.Errorf("CheckPercent(0) = %q, expected no warning", w)
	}
	if w := CheckPercent("winRate", 100); w != "" {
		t.Errorf("CheckPercent(100) = %q, expected no warning", w)
	}
	if w := CheckPercent("winRate", 140); w == "" || !strings.Contains(w, "winRate") {
		t.Errorf("CheckPercent(140) = %q, expected winRate warning", w)
	}
	if w := CheckPercent("winRate", -1); w == "" {
		t.Error("CheckPercent(-1) expected warning")
	}
}

func TestCheckNonNegative(t *testing.T) {
	if w := CheckNonNegative("rdSpend", 0); w != "" {
		t.Errorf("CheckNonNegative(0) = %q, expected no warning", w)
	}
	if w := CheckNonNegative("rdSpend", -10); w == "" || !strings.Contains(w, "rdSpend") {
		t.Errorf("CheckNonNegative(-10) = %q, expected rdSpend warning", w)
	}
}

func TestCheckOrdering(t *testing.T) {
	if w := CheckOrdering("mqls", 960, "leads", 2400); w != "" {
		t.Errorf("valid ordering produced warning %q", w)
	}
	if w := CheckOrdering("mqls", 2401, "leads", 2400); w == "" {
		t.Error("violated ordering produced no warning")
	}
	// Zero upper bound means the stage is unused, not violated.
	if w := CheckOrdering("engaged", 50, "target", 0); w != "" {
		t.Errorf("zero upper bound produced warning %q", w)
	}
}
