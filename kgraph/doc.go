// Package kgraph resolves the execution order of units that exchange values
// by name.
//
// # Overview
//
// A unit is described by an IOSpec: the names it consumes and the names it
// produces. kgraph never sees the units themselves, only their position in the
// slice of specs, which makes it usable for anything that wires producers to
// consumers by name.
//
// Resolution happens in two steps:
//
//  1. BuildDependencyGraph maps each unit to the producers of its inputs.
//  2. TopologicalSort orders the units so that producers precede consumers.
//
// # Basic Usage
//
//	specs := []kgraph.IOSpec{
//	    {Inputs: []string{"b"}, Outputs: []string{"c"}},
//	    {Inputs: []string{"a"}, Outputs: []string{"b"}},
//	}
//
//	graph, err := kgraph.BuildDependencyGraph(specs) // {0: [1], 1: []}
//	if err != nil {
//	    return err
//	}
//	order, err := kgraph.TopologicalSort(graph) // [1 0]
//
// # Validation
//
// Graph construction checks:
//
//   - **Unit Declarations**: a unit may not repeat a name within its inputs or
//     its outputs, nor consume a name it produces itself (ErrInvalidIOSpec)
//   - **Output Ownership**: every output name has exactly one producer
//     (ErrOutputRedefinition)
//
// Sorting checks:
//
//   - **Cycles**: units whose dependencies can never be satisfied
//     (ErrCyclicDependency)
//
// Inputs without a producer are not an error. They are the external inputs of
// the whole graph and must be supplied by the caller at compute time.
//
// # Error Handling
//
// Every failure is a structured error carrying the offending indices and
// names, and matches one of the sentinel errors:
//
//	_, err := kgraph.BuildDependencyGraph(specs)
//	var redefined *kgraph.OutputRedefinitionError
//	if errors.As(err, &redefined) {
//	    // redefined.Output, redefined.Indices
//	} else if errors.Is(err, kgraph.ErrInvalidIOSpec) {
//	    // fix the unit declaration
//	}
//
// # Determinism
//
// TopologicalSort is independent of map iteration order: units that become
// ready in the same sweep are emitted in ascending index order.
//
// Sorting complexity: O(n²) where n is the number of units.
package kgraph
