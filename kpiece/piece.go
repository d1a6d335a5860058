package kpiece

import (
	"context"
	"fmt"
)

// Values maps input or output names to values. The library never inspects
// the values themselves.
type Values[V any] map[string]V

// Piece is the unit of computation. A piece declares the names it reads and
// the names it produces, and computes the latter from the former.
//
// Implementations must be immutable once constructed: Inputs and Outputs are
// expected to return the same names on every call. Compute may receive more
// values than the piece declared and must only return values for the names in
// Outputs.
type Piece[V any] interface {
	// Inputs returns the names of the values required by this piece.
	Inputs() []string

	// Outputs returns the names of the values produced by this piece.
	Outputs() []string

	// Compute performs the computation. A missing input should surface as an
	// error at the point of lookup, see Lookup.
	Compute(ctx context.Context, in Values[V]) (Values[V], error)
}

// Named is implemented by pieces that carry a display name. Names are used
// for diagnostics only and need not be unique.
type Named interface {
	Name() string
}

// Container is implemented by pieces that aggregate other pieces, such as a
// composite. Traversals use it to descend into nested pieces without
// inspecting concrete types.
type Container[V any] interface {
	Piece[V]

	// Components returns the aggregated pieces in execution order.
	Components() []Piece[V]
}

// NameOf returns the display name of p. Pieces that don't implement Named are
// identified by their Go type.
func NameOf(p any) string {
	if n, ok := p.(Named); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", p)
}
