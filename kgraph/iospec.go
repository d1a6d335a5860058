package kgraph

import (
	"go.uber.org/multierr"
)

// IOSpec is the part of a unit the graph builder looks at: the names it
// consumes and the names it produces. A unit is identified by the position of
// its IOSpec in the slice handed to BuildDependencyGraph.
type IOSpec struct {
	Inputs  []string
	Outputs []string
}

// Validate checks the spec of the unit at index on its own. It reports
// repeated inputs, repeated outputs and names that are both consumed and
// produced by the unit. All problems are combined into one error; use
// multierr.Errors to get them individually.
func (s IOSpec) Validate(index int) error {
	var err error

	inputs := make(map[string]struct{}, len(s.Inputs))
	for _, name := range s.Inputs {
		if _, seen := inputs[name]; seen {
			err = multierr.Append(err, &InvalidIOSpecError{Index: index, Name: name, Problem: DuplicateInput})
			continue
		}
		inputs[name] = struct{}{}
	}

	outputs := make(map[string]struct{}, len(s.Outputs))
	for _, name := range s.Outputs {
		if _, seen := outputs[name]; seen {
			err = multierr.Append(err, &InvalidIOSpecError{Index: index, Name: name, Problem: DuplicateOutput})
			continue
		}
		outputs[name] = struct{}{}
		if _, consumed := inputs[name]; consumed {
			err = multierr.Append(err, &InvalidIOSpecError{Index: index, Name: name, Problem: InputIsOutput})
		}
	}

	return err
}
