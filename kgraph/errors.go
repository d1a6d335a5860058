package kgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the graph definition failures. Every structured error
// of this package matches exactly one of them with errors.Is.
var (
	ErrOutputRedefinition = errors.New("output redefined")
	ErrCyclicDependency   = errors.New("cyclic dependency")
	ErrInvalidIOSpec      = errors.New("invalid io spec")
)

// OutputRedefinitionError is returned when more than one unit declares the
// same output name.
type OutputRedefinitionError struct {
	// Output is the redefined output name.
	Output string

	// Indices holds the units producing Output, in ascending order.
	Indices []int
}

func (e *OutputRedefinitionError) Error() string {
	return fmt.Sprintf("%s: multiple units produce %q: %v", ErrOutputRedefinition, e.Output, e.Indices)
}

func (e *OutputRedefinitionError) Unwrap() error {
	return ErrOutputRedefinition
}

// CyclicDependencyError is returned when a dependency graph has no valid
// order. Indices contains every unit that could not be ordered, which covers
// the units on a cycle as well as the units depending on one.
type CyclicDependencyError struct {
	Indices []int
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%s between units %v", ErrCyclicDependency, e.Indices)
}

func (e *CyclicDependencyError) Unwrap() error {
	return ErrCyclicDependency
}

// IOSpecProblem classifies an InvalidIOSpecError.
type IOSpecProblem int

const (
	DuplicateInput IOSpecProblem = iota
	DuplicateOutput
	InputIsOutput
)

func (p IOSpecProblem) String() string {
	switch p {
	case DuplicateInput:
		return "duplicate input"
	case DuplicateOutput:
		return "duplicate output"
	case InputIsOutput:
		return "consumes its own output"
	default:
		return "unknown"
	}
}

// InvalidIOSpecError is returned for a unit whose own declaration is
// inconsistent.
type InvalidIOSpecError struct {
	Index   int
	Name    string
	Problem IOSpecProblem
}

func (e *InvalidIOSpecError) Error() string {
	return fmt.Sprintf("%s: unit %d: %s %q", ErrInvalidIOSpec, e.Index, e.Problem, e.Name)
}

func (e *InvalidIOSpecError) Unwrap() error {
	return ErrInvalidIOSpec
}
