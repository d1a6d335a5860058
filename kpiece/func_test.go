package kpiece

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewFunc(t *testing.T) {
	inputs := []string{"a", "b"}
	p := NewFunc[int]("sum", inputs, []string{"sum"}, func(ctx context.Context, in Values[int]) (Values[int], error) {
		return Values[int]{"sum": in["a"] + in["b"]}, nil
	})

	// Declarations are copies.
	inputs[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, p.Inputs())
	p.Inputs()[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, p.Inputs())

	assert.Equal(t, "sum", p.Name())
	assert.Equal(t, []string{"sum"}, p.Outputs())

	out, err := p.Compute(context.Background(), Values[int]{"a": 1, "b": 2})
	assert.NoError(t, err)
	assert.Equal(t, Values[int]{"sum": 3}, out)
}

func TestFuncClose(t *testing.T) {
	closed := false
	p := NewFunc[int]("closer", nil, nil, nil, WithClose[int](func() error {
		closed = true
		return nil
	}))
	assert.NoError(t, p.Close())
	assert.True(t, closed)

	assert.NoError(t, NewFunc[int]("noop", nil, nil, nil).Close())
}

func TestWrap(t *testing.T) {
	clamp := func(args ...float64) (float64, error) {
		x, lo, hi := args[0], args[1], args[2]
		if lo > hi {
			return 0, errors.New("empty range")
		}
		switch {
		case x < lo:
			return lo, nil
		case x > hi:
			return hi, nil
		}
		return x, nil
	}

	t.Run("bound arguments follow inputs", func(t *testing.T) {
		p := Wrap("clamp", clamp, []string{"x"}, "y", 0, 1)
		assert.Equal(t, []string{"x"}, p.Inputs())
		assert.Equal(t, []string{"y"}, p.Outputs())

		out, err := p.Compute(context.Background(), Values[float64]{"x": 3})
		assert.NoError(t, err)
		assert.Equal(t, Values[float64]{"y": 1}, out)
	})

	t.Run("inputs passed positionally", func(t *testing.T) {
		p := Wrap("clamp", clamp, []string{"x", "lo", "hi"}, "y")
		out, err := p.Compute(context.Background(), Values[float64]{"x": -2, "lo": -1, "hi": 1})
		assert.NoError(t, err)
		assert.Equal(t, Values[float64]{"y": -1}, out)
	})

	t.Run("missing input fails at lookup", func(t *testing.T) {
		p := Wrap("clamp", clamp, []string{"x", "lo", "hi"}, "y")
		_, err := p.Compute(context.Background(), Values[float64]{"x": 1, "hi": 2})
		assert.True(t, errors.Is(err, ErrMissingInput))

		var missing *MissingInputError
		assert.True(t, errors.As(err, &missing))
		assert.Equal(t, "clamp", missing.Piece)
		assert.Equal(t, []string{"lo"}, missing.Names)
	})

	t.Run("function error is wrapped", func(t *testing.T) {
		p := Wrap("clamp", clamp, []string{"x"}, "y", 1, 0)
		_, err := p.Compute(context.Background(), Values[float64]{"x": 0.5})
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "empty range"))
	})
}

func TestMap(t *testing.T) {
	p := Map("upper", "in", "out", func(v string) (string, error) {
		return strings.ToUpper(v), nil
	})
	out, err := p.Compute(context.Background(), Values[string]{"in": "jigsaw", "other": "x"})
	assert.NoError(t, err)
	assert.Equal(t, Values[string]{"out": "JIGSAW"}, out)
}

func TestTrainableFunc(t *testing.T) {
	params := []*Parameter{{Name: "w", Value: 3}}
	p := NewTrainableFunc[int]("scale", []string{"x"}, []string{"y"}, func(ctx context.Context, in Values[int]) (Values[int], error) {
		return Values[int]{"y": in["x"] * params[0].Value.(int)}, nil
	}, params)

	var _ Trainable = p
	var _ Piece[int] = p

	assert.Equal(t, params, p.Parameters())
	out, err := p.Compute(context.Background(), Values[int]{"x": 2})
	assert.NoError(t, err)
	assert.Equal(t, Values[int]{"y": 6}, out)
}
