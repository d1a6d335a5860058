package kgraph

// TopologicalSort orders the units of g so that every unit comes after the
// units it depends on.
//
// The order is built in sweeps. Each sweep visits the unresolved units in
// ascending index order and appends every unit whose dependencies have all
// been appended, including units appended earlier in the same sweep. For
// example {0: [1 2], 1: [2], 2: []} sorts to [2 1 0]. The result is therefore
// deterministic and differs from a queue based (Kahn) order for unrelated
// subgraphs.
//
// A sweep that appends nothing means the remaining units can't be ordered;
// they are reported in a CyclicDependencyError. Dependencies on indices that
// are not part of g never resolve and end up there as well.
//
// Time complexity: O(n²) sweeps over n units, which is fine for the number of
// pieces a composite holds.
func TopologicalSort(g DependencyGraph) ([]int, error) {
	pending := g.Indices()
	order := make([]int, 0, len(pending))
	resolved := make(map[int]bool, len(pending))

	for len(pending) > 0 {
		remaining := make([]int, 0, len(pending))
		for _, idx := range pending {
			if allResolved(g[idx], resolved) {
				order = append(order, idx)
				resolved[idx] = true
			} else {
				remaining = append(remaining, idx)
			}
		}

		if len(remaining) == len(pending) {
			return nil, &CyclicDependencyError{Indices: remaining}
		}
		pending = remaining
	}

	return order, nil
}

func allResolved(deps []int, resolved map[int]bool) bool {
	for _, dep := range deps {
		if !resolved[dep] {
			return false
		}
	}
	return true
}

// Sort builds the dependency graph of specs and returns it together with its
// topological order.
func Sort(specs []IOSpec) (DependencyGraph, []int, error) {
	graph, err := BuildDependencyGraph(specs)
	if err != nil {
		return nil, nil, err
	}
	order, err := TopologicalSort(graph)
	if err != nil {
		return nil, nil, err
	}
	return graph, order, nil
}
