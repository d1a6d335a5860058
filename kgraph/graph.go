package kgraph

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DependencyGraph maps every unit index to the indices of the units it
// depends on, that is the producers of its inputs. Dependency lists are
// sorted and free of duplicates. A unit without dependencies maps to an empty
// list.
type DependencyGraph map[int][]int

// BuildDependencyGraph links every unit to the producers of its inputs.
//
// Outputs are claimed by the first unit declaring them. A later unit
// declaring the same output fails the build immediately with an
// OutputRedefinitionError. Inputs that no unit produces are external inputs
// and add no edge.
func BuildDependencyGraph(specs []IOSpec) (DependencyGraph, error) {
	producers := make(map[string]int)
	for idx, spec := range specs {
		if err := spec.Validate(idx); err != nil {
			return nil, err
		}

		for _, output := range spec.Outputs {
			if existing, ok := producers[output]; ok {
				return nil, &OutputRedefinitionError{
					Output:  output,
					Indices: []int{existing, idx},
				}
			}
			producers[output] = idx
		}
	}

	graph := make(DependencyGraph, len(specs))
	for idx, spec := range specs {
		deps := []int{}
		for _, input := range spec.Inputs {
			if producer, ok := producers[input]; ok {
				deps = append(deps, producer)
			}
		}
		slices.Sort(deps)
		graph[idx] = slices.Compact(deps)
	}

	return graph, nil
}

// Indices returns the units of the graph in ascending order.
func (g DependencyGraph) Indices() []int {
	indices := maps.Keys(g)
	slices.Sort(indices)
	return indices
}

// Roots returns the units without dependencies in ascending order.
func (g DependencyGraph) Roots() []int {
	var roots []int
	for _, idx := range g.Indices() {
		if len(g[idx]) == 0 {
			roots = append(roots, idx)
		}
	}
	return roots
}

// String renders the graph deterministically, e.g. "{0: [], 1: [0]}".
func (g DependencyGraph) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, idx := range g.Indices() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %v", idx, g[idx])
	}
	sb.WriteByte('}')
	return sb.String()
}
