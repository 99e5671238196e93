package graph

import (
	"go.uber.org/zap"

	"github.com/iwvelando/saas-metrics/pkg/constants"
)

// Connections holds the direct neighbors of one metric.
type Connections struct {
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

// Degrees holds the focus-mode neighborhood of a metric: Primary is the
// direct inputs and outputs, Secondary the direction-aware two-hop expansion.
type Degrees struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// DirectConnections returns the direct inputs and outputs of a metric.
// Unknown ids produce empty sets and a warning, never an error; the graph is
// queried from click handlers with untrusted string ids.
func DirectConnections(id string) Connections {
	rel, ok := relationships[id]
	if !ok {
		zap.L().Warn("metric id not found in relationship graph",
			zap.String("op", "graph.DirectConnections"),
			zap.String("id", id),
		)
		return Connections{Inputs: []string{}, Outputs: []string{}}
	}
	return Connections{
		Inputs:  append([]string{}, rel.Inputs...),
		Outputs: append([]string{}, rel.Outputs...),
	}
}

// TwoDegrees expands the focus neighborhood of a metric. Primary is the
// concatenation of the direct inputs and outputs in authored order. Secondary
// is direction-aware: the inputs of each direct input and the outputs of each
// direct output, excluding the focus id and anything already primary. This is
// intentionally narrower than a symmetric two-hop BFS; downstream-of-inputs
// and upstream-of-outputs are not part of the focus neighborhood.
func TwoDegrees(id string) Degrees {
	direct := DirectConnections(id)

	primary := make([]string, 0, len(direct.Inputs)+len(direct.Outputs))
	inPrimary := make(map[string]bool, len(direct.Inputs)+len(direct.Outputs))
	for _, nid := range direct.Inputs {
		if !inPrimary[nid] {
			primary = append(primary, nid)
			inPrimary[nid] = true
		}
	}
	for _, nid := range direct.Outputs {
		if !inPrimary[nid] {
			primary = append(primary, nid)
			inPrimary[nid] = true
		}
	}

	secondary := []string{}
	inSecondary := make(map[string]bool)
	appendSecondary := func(nid string) {
		if nid == id || inPrimary[nid] || inSecondary[nid] {
			return
		}
		secondary = append(secondary, nid)
		inSecondary[nid] = true
	}
	for _, nid := range direct.Inputs {
		for _, upstream := range relationships[nid].Inputs {
			appendSecondary(upstream)
		}
	}
	for _, nid := range direct.Outputs {
		for _, downstream := range relationships[nid].Outputs {
			appendSecondary(downstream)
		}
	}

	return Degrees{Primary: primary, Secondary: secondary}
}

// UpstreamPath returns every metric reachable by following input edges from
// id, bounded by maxDepth, in BFS discovery order. The start node is excluded.
func UpstreamPath(id string, maxDepth int) []string {
	return walk(id, maxDepth, func(rel Relationship) []string { return rel.Inputs })
}

// DownstreamPath returns every metric reachable by following output edges from
// id, bounded by maxDepth, in BFS discovery order. The start node is excluded.
func DownstreamPath(id string, maxDepth int) []string {
	return walk(id, maxDepth, func(rel Relationship) []string { return rel.Outputs })
}

func walk(id string, maxDepth int, edges func(Relationship) []string) []string {
	if maxDepth <= 0 {
		maxDepth = constants.DefaultTraversalDepth
	}
	if _, ok := relationships[id]; !ok {
		zap.L().Warn("metric id not found in relationship graph",
			zap.String("op", "graph.walk"),
			zap.String("id", id),
		)
		return []string{}
	}

	visited := map[string]bool{id: true}
	order := []string{}
	frontier := []string{id}
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, nid := range frontier {
			for _, neighbor := range edges(relationships[nid]) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				order = append(order, neighbor)
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
	return order
}

// Opacity maps a metric id to its focus-mode opacity given the selected node
// and its precomputed neighborhood. Pure lookup, no traversal.
func Opacity(id, focus string, degrees Degrees) float64 {
	if id == focus {
		return constants.OpacityFocused
	}
	for _, nid := range degrees.Primary {
		if nid == id {
			return constants.OpacityPrimary
		}
	}
	for _, nid := range degrees.Secondary {
		if nid == id {
			return constants.OpacitySecondary
		}
	}
	return constants.OpacityDimmed
}

// Opacities returns the opacity of every node in the graph for a given focus
// id, precomputing the neighborhood once.
func Opacities(focus string) map[string]float64 {
	degrees := TwoDegrees(focus)
	out := make(map[string]float64, len(relationships))
	for id := range relationships {
		out[id] = Opacity(id, focus, degrees)
	}
	return out
}
