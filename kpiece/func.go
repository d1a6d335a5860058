package kpiece

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"
)

// FuncOption configures optional behavior for NewFunc pieces.
type FuncOption[V any] func(*FuncPiece[V])

// WithClose adds cleanup logic to a NewFunc piece, run by Close.
func WithClose[V any](fn func() error) FuncOption[V] {
	return func(p *FuncPiece[V]) {
		p.closeFn = fn
	}
}

// ComputeFunc is the signature of the function wrapped by NewFunc.
type ComputeFunc[V any] func(ctx context.Context, in Values[V]) (Values[V], error)

// NewFunc creates a piece from a function and fixed input/output names. The
// name slices are copied.
//
// Example:
//
//	kpiece.NewFunc[float64]("double", []string{"x"}, []string{"y"},
//	    func(ctx context.Context, in kpiece.Values[float64]) (kpiece.Values[float64], error) {
//	        x, err := kpiece.Lookup(in, "double", "x")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return kpiece.Values[float64]{"y": 2 * x}, nil
//	    })
func NewFunc[V any](name string, inputs, outputs []string, fn ComputeFunc[V], opts ...FuncOption[V]) *FuncPiece[V] {
	p := &FuncPiece[V]{
		name:    name,
		inputs:  slices.Clone(inputs),
		outputs: slices.Clone(outputs),
		fn:      fn,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FuncPiece is the piece returned by NewFunc and the other adapters.
type FuncPiece[V any] struct {
	name    string
	inputs  []string
	outputs []string
	fn      ComputeFunc[V]
	closeFn func() error
}

func (f *FuncPiece[V]) Name() string      { return f.name }
func (f *FuncPiece[V]) Inputs() []string  { return slices.Clone(f.inputs) }
func (f *FuncPiece[V]) Outputs() []string { return slices.Clone(f.outputs) }

func (f *FuncPiece[V]) Compute(ctx context.Context, in Values[V]) (Values[V], error) {
	return f.fn(ctx, in)
}

// Close runs the function attached with WithClose, if any.
func (f *FuncPiece[V]) Close() error {
	if f.closeFn != nil {
		return f.closeFn()
	}
	return nil
}

// Wrap adapts a plain function into a piece with a single output. The values
// named by inputs are passed positionally, followed by the bound arguments,
// and the result is stored under output.
//
// Example:
//
//	// y = clamp(x, 0, 1)
//	kpiece.Wrap("clamp", clamp, []string{"x"}, "y", 0.0, 1.0)
func Wrap[V any](name string, fn func(args ...V) (V, error), inputs []string, output string, bound ...V) *FuncPiece[V] {
	inputs = slices.Clone(inputs)
	bound = slices.Clone(bound)
	return NewFunc(name, inputs, []string{output}, func(ctx context.Context, in Values[V]) (Values[V], error) {
		args := make([]V, 0, len(inputs)+len(bound))
		for _, input := range inputs {
			v, err := Lookup(in, name, input)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		args = append(args, bound...)

		out, err := fn(args...)
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", name, err)
		}
		return Values[V]{output: out}, nil
	})
}

// Map adapts a single-argument function into a piece reading input and
// producing output.
func Map[V any](name, input, output string, fn func(v V) (V, error)) *FuncPiece[V] {
	return Wrap(name, func(args ...V) (V, error) {
		return fn(args[0])
	}, []string{input}, output)
}
