// Package jigsaw composes independently defined pieces of computation into a
// single piece.
//
// # Overview
//
// A kpiece.Piece declares named inputs, named outputs and a Compute function.
// A Composite takes a set of pieces, works out which piece produces the
// inputs of which other piece, and runs them in an order where producers
// always precede consumers. The Composite is a Piece itself, so composites
// nest.
//
// Construction is split from execution:
//
//  1. **Construction**: New builds the dependency graph (kgraph), sorts it and
//     caches the ordered components. Definition errors surface here.
//  2. **Execution**: Compute threads values through the cached order. No graph
//     work happens per call.
//
// # Basic Usage
//
//	ab := kpiece.Map("ab", "a", "b", f)
//	bc := kpiece.Map("bc", "b", "c", g)
//	cd := kpiece.Map("cd", "c", "d", h)
//
//	// Order doesn't matter, components are sorted by their dependencies.
//	c := jigsaw.MustNew([]kpiece.Piece[float64]{cd, ab, bc}, jigsaw.WithName("chain"))
//
//	out, err := c.Compute(ctx, kpiece.Values[float64]{"a": 1})
//	// out holds b, c and d, but not a.
//
// # Errors
//
// Construction fails with an error matching ErrGraphDefinition:
//
//	_, err := jigsaw.New(pieces)
//	var redefined *jigsaw.OutputRedefinitionError
//	var cyclic *jigsaw.CyclicDependencyError
//	switch {
//	case errors.As(err, &redefined):
//	    // redefined.Output, redefined.Names, redefined.Indices
//	case errors.As(err, &cyclic):
//	    // cyclic.Names, cyclic.Indices
//	}
//
// The underlying kgraph errors are wrapped and can be matched as well.
//
// Errors from Compute are the errors of the failing component, unchanged. A
// missing input is reported by the component that looks it up (see
// kpiece.Lookup), or up front for all components if WithValidateInputs is
// enabled.
//
// # Extraction
//
// Extract collects components by type or capability across nested
// composites, e.g. every kpiece.Trainable of a model or every loss:
//
//	params := jigsaw.Extract[kpiece.Trainable](model)
//
// # Thread Safety
//
// A Composite is immutable after New. Compute allocates fresh maps per call,
// so concurrent calls are safe whenever the components are. The composite adds
// no synchronization for stateful components.
package jigsaw
