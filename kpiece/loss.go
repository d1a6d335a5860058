package kpiece

import (
	"context"
	"fmt"
)

// DefaultLossName is the output name of a LossPiece created without
// WithLossName.
const DefaultLossName = "loss"

// LossOption configures a LossPiece.
type LossOption[V any] func(*LossPiece[V])

// WithLossName sets the display name of the loss, which is also the name of
// its single output.
func WithLossName[V any](name string) LossOption[V] {
	return func(l *LossPiece[V]) {
		l.name = name
	}
}

// LossPiece computes a loss value from a prediction and a target. It is a
// distinct type so that training loops can collect every loss of a composite
// with jigsaw.Extract[*kpiece.LossPiece[V]].
type LossPiece[V any] struct {
	name   string
	input  string
	target string
	fn     func(input, target V) (V, error)
}

// WrapLoss adapts a loss function. The piece reads inputName and targetName
// and produces a single output named after the loss.
func WrapLoss[V any](fn func(input, target V) (V, error), inputName, targetName string, opts ...LossOption[V]) *LossPiece[V] {
	l := &LossPiece[V]{
		name:   DefaultLossName,
		input:  inputName,
		target: targetName,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *LossPiece[V]) Name() string      { return l.name }
func (l *LossPiece[V]) Inputs() []string  { return []string{l.input, l.target} }
func (l *LossPiece[V]) Outputs() []string { return []string{l.name} }

func (l *LossPiece[V]) Compute(ctx context.Context, in Values[V]) (Values[V], error) {
	input, err := Lookup(in, l.name, l.input)
	if err != nil {
		return nil, err
	}
	target, err := Lookup(in, l.name, l.target)
	if err != nil {
		return nil, err
	}

	loss, err := l.fn(input, target)
	if err != nil {
		return nil, fmt.Errorf("loss %q: %w", l.name, err)
	}
	return Values[V]{l.name: loss}, nil
}
