package jigsaw

import (
	"context"
	"errors"
	"fmt"

	"github.com/birdayz/jigsaw/kgraph"
	"github.com/birdayz/jigsaw/kpiece"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Composite merges multiple pieces into a single piece.
//
// The components are sorted at construction so that every component runs
// after the producers of its inputs. Compute runs them in that order and makes
// the outputs of earlier components available to later ones. No two
// components may declare the same output.
//
// A Composite is immutable and safe for concurrent use as long as its
// components are.
type Composite[V any] struct {
	name       string
	components []kpiece.Piece[V]

	// graph and order refer to the components by their position in the
	// slice passed to New.
	graph kgraph.DependencyGraph
	order []int

	inputs         []string
	outputs        []string
	externalInputs []string

	validateInputs bool
	interceptors   *kpiece.InterceptorChain[V]
	log            logr.Logger
}

var (
	_ kpiece.Piece[any]     = (*Composite[any])(nil)
	_ kpiece.Container[any] = (*Composite[any])(nil)
	_ kpiece.Named          = (*Composite[any])(nil)
	_ kpiece.External       = (*Composite[any])(nil)
)

// New creates a composite from components. The dependency graph and the
// execution order are computed once, here. Errors match ErrGraphDefinition
// and carry the names of the offending components; no composite is returned
// in that case.
func New[V any](components []kpiece.Piece[V], opts ...Option) (*Composite[V], error) {
	cfg := newConfig(opts)

	var chain *kpiece.InterceptorChain[V]
	if cfg.interceptors != nil {
		interceptors, ok := cfg.interceptors.([]kpiece.Interceptor[V])
		if !ok {
			return nil, fmt.Errorf("%w: composite %s: interceptors of type %T", ErrInvalidOption, cfg.name, cfg.interceptors)
		}
		chain = kpiece.ChainInterceptors(interceptors...)
	}

	specs := make([]kgraph.IOSpec, len(components))
	for i, c := range components {
		specs[i] = kgraph.IOSpec{
			Inputs:  kpiece.RequiredInputs(c),
			Outputs: c.Outputs(),
		}
	}

	graph, err := buildDependencyGraph(cfg.name, components, specs)
	if err != nil {
		return nil, err
	}
	order, err := topologicalSort(cfg.name, components, graph)
	if err != nil {
		return nil, err
	}

	c := &Composite[V]{
		name:           cfg.name,
		components:     make([]kpiece.Piece[V], 0, len(order)),
		graph:          graph,
		order:          order,
		validateInputs: cfg.validateInputs,
		interceptors:   chain,
		log:            cfg.log.WithValues("composite", cfg.name),
	}

	produced := make(map[string]struct{})
	for _, idx := range order {
		component := components[idx]
		c.components = append(c.components, component)
		c.inputs = append(c.inputs, component.Inputs()...)
		for _, output := range component.Outputs() {
			produced[output] = struct{}{}
		}
	}
	for _, component := range c.components {
		c.outputs = append(c.outputs, component.Outputs()...)
	}

	seen := make(map[string]struct{})
	for _, component := range c.components {
		for _, input := range kpiece.RequiredInputs(component) {
			if _, ok := produced[input]; ok {
				continue
			}
			if _, ok := seen[input]; ok {
				continue
			}
			seen[input] = struct{}{}
			c.externalInputs = append(c.externalInputs, input)
		}
	}

	c.log.V(1).Info("Built composite",
		"components", c.componentNames(),
		"graph", graph.String(),
		"roots", namesAt(components, graph.Roots()),
		"order", order,
	)

	return c, nil
}

// MustNew is like New but panics on error.
func MustNew[V any](components []kpiece.Piece[V], opts ...Option) *Composite[V] {
	c, err := New(components, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func buildDependencyGraph[V any](name string, components []kpiece.Piece[V], specs []kgraph.IOSpec) (kgraph.DependencyGraph, error) {
	graph, err := kgraph.BuildDependencyGraph(specs)
	if err == nil {
		return graph, nil
	}

	var redefined *kgraph.OutputRedefinitionError
	if errors.As(err, &redefined) {
		return nil, &OutputRedefinitionError{
			Composite: name,
			Output:    redefined.Output,
			Names:     namesAt(components, redefined.Indices),
			Indices:   slices.Clone(redefined.Indices),
			Err:       err,
		}
	}

	var invalid *kgraph.InvalidIOSpecError
	if errors.As(err, &invalid) {
		return nil, fmt.Errorf("%w: composite %s: component %s: %w",
			ErrGraphDefinition, name, kpiece.NameOf(components[invalid.Index]), err)
	}

	return nil, fmt.Errorf("%w: composite %s: %w", ErrGraphDefinition, name, err)
}

func topologicalSort[V any](name string, components []kpiece.Piece[V], graph kgraph.DependencyGraph) ([]int, error) {
	order, err := kgraph.TopologicalSort(graph)
	if err == nil {
		return order, nil
	}

	var cyclic *kgraph.CyclicDependencyError
	if errors.As(err, &cyclic) {
		return nil, &CyclicDependencyError{
			Composite: name,
			Names:     namesAt(components, cyclic.Indices),
			Indices:   slices.Clone(cyclic.Indices),
			Err:       err,
		}
	}

	return nil, fmt.Errorf("%w: composite %s: %w", ErrGraphDefinition, name, err)
}

func namesAt[V any](components []kpiece.Piece[V], indices []int) []string {
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = kpiece.NameOf(components[idx])
	}
	return names
}

// Name returns the display name of the composite.
func (c *Composite[V]) Name() string {
	return c.name
}

// Inputs returns the inputs of all components, concatenated in execution
// order. Names consumed by several components appear several times, and
// names produced by one component and consumed by another are included; see
// ExternalInputs for what a caller has to supply.
func (c *Composite[V]) Inputs() []string {
	return slices.Clone(c.inputs)
}

// Outputs returns the outputs of all components, concatenated in execution
// order.
func (c *Composite[V]) Outputs() []string {
	return slices.Clone(c.outputs)
}

// ExternalInputs returns the inputs no component produces, without
// duplicates, in order of first use.
func (c *Composite[V]) ExternalInputs() []string {
	return slices.Clone(c.externalInputs)
}

// Components returns the components in execution order.
func (c *Composite[V]) Components() []kpiece.Piece[V] {
	return slices.Clone(c.components)
}

// Graph returns the dependency graph between the components, indexed by their
// position in the slice passed to New.
func (c *Composite[V]) Graph() kgraph.DependencyGraph {
	graph := make(kgraph.DependencyGraph, len(c.graph))
	for idx, deps := range c.graph {
		graph[idx] = slices.Clone(deps)
	}
	return graph
}

// Order returns the execution order as positions in the slice passed to New.
func (c *Composite[V]) Order() []int {
	return slices.Clone(c.order)
}

// Compute runs the components in order. Each component sees the caller's
// inputs plus the outputs of every component before it. The result holds the
// outputs of all components and none of the caller's inputs; in is never
// modified.
//
// Errors returned by components are passed through unchanged.
func (c *Composite[V]) Compute(ctx context.Context, in kpiece.Values[V]) (kpiece.Values[V], error) {
	log := c.log
	if log.V(2).Enabled() {
		log = log.WithValues("run_id", uuid.NewString())
	}

	available := make(kpiece.Values[V], len(in)+len(c.outputs))
	maps.Copy(available, in)
	outputs := make(kpiece.Values[V], len(c.outputs))

	for _, component := range c.components {
		if c.validateInputs {
			if err := kpiece.CheckInputs(component, available); err != nil {
				return nil, err
			}
		}

		log.V(2).Info("Computing component", "component", kpiece.NameOf(component))

		out, err := c.interceptors.Execute(ctx, component, available)
		if err != nil {
			return nil, err
		}

		maps.Copy(available, out)
		maps.Copy(outputs, out)
	}

	return outputs, nil
}

func (c *Composite[V]) componentNames() []string {
	names := make([]string, len(c.components))
	for i, component := range c.components {
		names[i] = kpiece.NameOf(component)
	}
	return names
}

func (c *Composite[V]) String() string {
	return fmt.Sprintf("%s%v", c.name, c.componentNames())
}
