// Package kpiece defines the unit of computation composed by jigsaw.
//
// A Piece declares the names of the values it reads (Inputs), the names of
// the values it produces (Outputs) and a Compute function mapping the former
// to the latter. Pieces never see each other; jigsaw.Composite wires them
// together by name.
//
// # Adapters
//
// Plain functions become pieces through NewFunc, Wrap and Map:
//
//	scale := kpiece.Map("scale", "x", "scaled", func(x float64) (float64, error) {
//	    return x * 10, nil
//	})
//
// Loss functions are wrapped with WrapLoss so they can be collected by type.
//
// # Capabilities
//
// Optional behavior is expressed as separate interfaces rather than as part
// of Piece: Named for display names, Trainable for parameter ownership and
// Container for pieces that aggregate other pieces.
//
// # Missing inputs
//
// Pieces look values up with Lookup, which fails with a MissingInputError
// (errors.Is(err, ErrMissingInput)) at the point of use.
package kpiece
