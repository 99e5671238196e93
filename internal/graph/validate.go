package graph

import (
	"github.com/rotisserie/eris"
)

// Validate checks the hand-authored table at construction time. Traversal
// depth bounds are only meaningful over a DAG, and both metrics-map views
// assume inputs feed strictly forward, so a cycle introduced during graph
// maintenance must fail fast rather than surface as a rendering glitch.
//
// Checks:
//   - every referenced id resolves to a node in the table
//   - every edge is mirrored (A lists B as output iff B lists A as input)
//   - every node has a tier assignment
//   - the edge set is acyclic (Kahn's algorithm)
func Validate() error {
	for id, rel := range relationships {
		if _, ok := tiers[id]; !ok {
			return eris.Errorf("graph: node %q has no tier assignment", id)
		}
		for _, in := range rel.Inputs {
			upstream, ok := relationships[in]
			if !ok {
				return eris.Errorf("graph: node %q references unknown input %q", id, in)
			}
			if !contains(upstream.Outputs, id) {
				return eris.Errorf("graph: edge %q -> %q missing from %q outputs", in, id, in)
			}
		}
		for _, out := range rel.Outputs {
			downstream, ok := relationships[out]
			if !ok {
				return eris.Errorf("graph: node %q references unknown output %q", id, out)
			}
			if !contains(downstream.Inputs, id) {
				return eris.Errorf("graph: edge %q -> %q missing from %q inputs", id, out, out)
			}
		}
	}

	// Kahn topological sort over output edges.
	indegree := make(map[string]int, len(relationships))
	for id := range relationships {
		indegree[id] = len(relationships[id].Inputs)
	}
	var queue []string
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		for _, out := range relationships[id].Outputs {
			indegree[out]--
			if indegree[out] == 0 {
				queue = append(queue, out)
			}
		}
	}
	if processed != len(relationships) {
		return eris.Errorf("graph: cycle detected, %d of %d nodes sorted", processed, len(relationships))
	}
	return nil
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
