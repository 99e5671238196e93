package graph

import (
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestMirrorInvariant(t *testing.T) {
	for id, rel := range relationships {
		for _, input := range rel.Inputs {
			if !contains(relationships[input].Outputs, id) {
				t.Errorf("%s lists %s as input but %s does not list it as output", id, input, input)
			}
		}
		for _, output := range rel.Outputs {
			if !contains(relationships[output].Inputs, id) {
				t.Errorf("%s lists %s as output but %s does not list it as input", id, output, output)
			}
		}
	}
}

func TestNodeCount(t *testing.T) {
	if got := NodeCount(); got != 71 {
		t.Errorf("NodeCount() = %d, expected 71", got)
	}
}

func TestTiers(t *testing.T) {
	tests := []struct {
		id   string
		tier string
	}{
		{IDMarketingSpend, TierBudget},
		{IDLeadsGenerated, TierActivities},
		{IDCACBlended, TierAcquisition},
		{IDNetNewARR, TierRevenue},
		{IDRuleOf40, TierOutcomes},
	}
	for _, tt := range tests {
		if got := Tier(tt.id); got != tt.tier {
			t.Errorf("Tier(%s) = %s, expected %s", tt.id, got, tt.tier)
		}
	}
	if got := Tier("no-such-metric"); got != "" {
		t.Errorf("Tier(unknown) = %q, expected empty", got)
	}

	for id := range relationships {
		if Tier(id) == "" {
			t.Errorf("node %s has no tier", id)
		}
	}
}

func TestDirectConnections(t *testing.T) {
	direct := DirectConnections(IDNetNewARR)

	wantInputs := []string{IDNewBookings, IDExpansionARR, IDChurnedARR}
	wantOutputs := []string{IDEndingARR, IDMagicNumber, IDARRGrowthRate, IDBurnMultiple}

	if !equalIDs(direct.Inputs, wantInputs) {
		t.Errorf("inputs = %v, expected %v", direct.Inputs, wantInputs)
	}
	if !equalIDs(direct.Outputs, wantOutputs) {
		t.Errorf("outputs = %v, expected %v", direct.Outputs, wantOutputs)
	}
}

func TestDirectConnectionsUnknownID(t *testing.T) {
	// Unknown ids come from untrusted click payloads; they must degrade to
	// empty sets without panicking.
	direct := DirectConnections("no-such-metric")
	if direct.Inputs == nil || direct.Outputs == nil {
		t.Fatal("unknown id returned nil slices")
	}
	if len(direct.Inputs) != 0 || len(direct.Outputs) != 0 {
		t.Errorf("unknown id returned non-empty connections: %+v", direct)
	}
}

func TestTwoDegrees(t *testing.T) {
	degrees := TwoDegrees(IDNetNewARR)

	// Primary is inputs then outputs, in authored order.
	wantPrimary := []string{
		IDNewBookings, IDExpansionARR, IDChurnedARR,
		IDEndingARR, IDMagicNumber, IDARRGrowthRate, IDBurnMultiple,
	}
	if !equalIDs(degrees.Primary, wantPrimary) {
		t.Errorf("primary = %v, expected %v", degrees.Primary, wantPrimary)
	}

	// Secondary is direction-aware: inputs of inputs plus outputs of outputs.
	// Down-stream consumers of new-bookings (e.g. saas-quick-ratio) and
	// upstream feeds of ending-arr (beginning-arr) stay out.
	wantSecondary := []string{
		IDNewCustomersAdded, IDAvgDealSize, IDMRR, IDAnnualizedGrowthRate,
	}
	if !equalIDs(degrees.Secondary, wantSecondary) {
		t.Errorf("secondary = %v, expected %v", degrees.Secondary, wantSecondary)
	}
}

func TestTwoDegreesExcludesFocusAndPrimary(t *testing.T) {
	for id := range relationships {
		degrees := TwoDegrees(id)

		seen := map[string]bool{id: true}
		for _, nid := range degrees.Primary {
			if seen[nid] {
				t.Errorf("focus %s: %s duplicated in primary", id, nid)
			}
			seen[nid] = true
		}
		for _, nid := range degrees.Secondary {
			if seen[nid] {
				t.Errorf("focus %s: %s appears in secondary after primary/focus", id, nid)
			}
			seen[nid] = true
		}
	}
}

func TestUpstreamPath(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		depth int
		want  []string
	}{
		{
			name:  "Ending ARR one level",
			id:    IDEndingARR,
			depth: 1,
			want:  []string{IDBeginningARR, IDNetNewARR},
		},
		{
			name:  "Ending ARR two levels",
			id:    IDEndingARR,
			depth: 2,
			want:  []string{IDBeginningARR, IDNetNewARR, IDNewBookings, IDExpansionARR, IDChurnedARR},
		},
		{
			name:  "Pure source has no upstream",
			id:    IDBeginningARR,
			depth: 3,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpstreamPath(tt.id, tt.depth)
			if !equalIDs(got, tt.want) {
				t.Errorf("UpstreamPath(%s, %d) = %v, expected %v", tt.id, tt.depth, got, tt.want)
			}
		})
	}
}

func TestDownstreamPath(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		depth int
		want  []string
	}{
		{
			name:  "Net new ARR one level",
			id:    IDNetNewARR,
			depth: 1,
			want:  []string{IDEndingARR, IDMagicNumber, IDARRGrowthRate, IDBurnMultiple},
		},
		{
			name:  "Net new ARR two levels",
			id:    IDNetNewARR,
			depth: 2,
			want: []string{
				IDEndingARR, IDMagicNumber, IDARRGrowthRate, IDBurnMultiple,
				IDMRR, IDAnnualizedGrowthRate,
			},
		},
		{
			name:  "Sink has no downstream",
			id:    IDRuleOf40,
			depth: 3,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DownstreamPath(tt.id, tt.depth)
			if !equalIDs(got, tt.want) {
				t.Errorf("DownstreamPath(%s, %d) = %v, expected %v", tt.id, tt.depth, got, tt.want)
			}
		})
	}
}

func TestWalkDefaultsDepth(t *testing.T) {
	// Zero and negative depths fall back to the default rather than returning
	// nothing.
	if got := UpstreamPath(IDEndingARR, 0); len(got) == 0 {
		t.Error("UpstreamPath with depth 0 returned empty path")
	}
	if got := DownstreamPath(IDNetNewARR, -1); len(got) == 0 {
		t.Error("DownstreamPath with depth -1 returned empty path")
	}
}

func TestWalkUnknownID(t *testing.T) {
	if got := UpstreamPath("no-such-metric", 3); len(got) != 0 {
		t.Errorf("unknown id returned path %v", got)
	}
}

func TestOpacity(t *testing.T) {
	degrees := TwoDegrees(IDNetNewARR)

	tests := []struct {
		name string
		id   string
		want float64
	}{
		{"Focused node", IDNetNewARR, 1.0},
		{"Primary input", IDNewBookings, 0.8},
		{"Primary output", IDBurnMultiple, 0.8},
		{"Secondary node", IDMRR, 0.6},
		{"Unrelated node", IDLTV, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Opacity(tt.id, IDNetNewARR, degrees); got != tt.want {
				t.Errorf("Opacity(%s) = %v, expected %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestOpacitiesCoversAllNodes(t *testing.T) {
	out := Opacities(IDNetNewARR)
	if len(out) != NodeCount() {
		t.Fatalf("Opacities returned %d entries, expected %d", len(out), NodeCount())
	}
	if out[IDNetNewARR] != 1.0 {
		t.Errorf("focus opacity = %v, expected 1.0", out[IDNetNewARR])
	}
	for id, opacity := range out {
		switch opacity {
		case 1.0, 0.8, 0.6, 0.2:
		default:
			t.Errorf("node %s has unexpected opacity %v", id, opacity)
		}
	}
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
