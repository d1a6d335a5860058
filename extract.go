package jigsaw

import (
	"io"

	"github.com/birdayz/jigsaw/kpiece"
	"go.uber.org/multierr"
)

// Extract returns the leaf components of c that are of type T, descending
// into nested composites. Components are visited in execution order, depth
// first. Nested composites are always expanded and never returned themselves,
// even if they implement T.
//
// Example:
//
//	losses := jigsaw.Extract[*kpiece.LossPiece[float64]](model)
//	trainables := jigsaw.Extract[kpiece.Trainable](model)
func Extract[T any, V any](c *Composite[V]) []T {
	var matches []T
	walk[V](c, func(p kpiece.Piece[V]) {
		if t, ok := p.(T); ok {
			matches = append(matches, t)
		}
	})
	return matches
}

// ExtractFunc is like Extract but selects leaf components with a predicate.
// The predicate is never called with a nested composite.
func ExtractFunc[V any](c *Composite[V], match func(kpiece.Piece[V]) bool) []kpiece.Piece[V] {
	var matches []kpiece.Piece[V]
	walk[V](c, func(p kpiece.Piece[V]) {
		if match(p) {
			matches = append(matches, p)
		}
	})
	return matches
}

// walk calls visit for every leaf component of c, descending into containers.
func walk[V any](c kpiece.Container[V], visit func(kpiece.Piece[V])) {
	for _, component := range c.Components() {
		if nested, ok := component.(kpiece.Container[V]); ok {
			walk(nested, visit)
			continue
		}
		visit(component)
	}
}

// Close closes every component implementing io.Closer, nested composites
// included, and returns the combined errors.
func (c *Composite[V]) Close() error {
	var err error
	for _, component := range c.components {
		if closer, ok := component.(io.Closer); ok {
			err = multierr.Append(err, closer.Close())
		}
	}
	return err
}
