package jigsaw

import (
	"errors"
	"fmt"
)

// ErrGraphDefinition is matched by every error returned while constructing a
// composite.
var ErrGraphDefinition = errors.New("invalid graph definition")

// ErrInvalidOption is returned by New for options that don't fit the
// composite, e.g. interceptors for a different value type.
var ErrInvalidOption = errors.New("invalid option")

// OutputRedefinitionError is returned when several components of a composite
// declare the same output. It wraps the *kgraph.OutputRedefinitionError it
// was translated from.
type OutputRedefinitionError struct {
	// Composite is the name of the composite being constructed.
	Composite string

	// Output is the redefined output name.
	Output string

	// Names and Indices identify the conflicting components by display name
	// and by position in the slice passed to New.
	Names   []string
	Indices []int

	Err error
}

func (e *OutputRedefinitionError) Error() string {
	return fmt.Sprintf("multiple components within %s redefine the same output (%s): %v at indices %v",
		e.Composite, e.Output, e.Names, e.Indices)
}

func (e *OutputRedefinitionError) Unwrap() []error {
	return []error{ErrGraphDefinition, e.Err}
}

// CyclicDependencyError is returned when the components of a composite can't
// be ordered. It wraps the *kgraph.CyclicDependencyError it was translated
// from.
type CyclicDependencyError struct {
	// Composite is the name of the composite being constructed.
	Composite string

	// Names and Indices identify the components on or behind a cycle.
	Names   []string
	Indices []int

	Err error
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency between components within %s: %v at indices %v",
		e.Composite, e.Names, e.Indices)
}

func (e *CyclicDependencyError) Unwrap() []error {
	return []error{ErrGraphDefinition, e.Err}
}
