package kpiece

import (
	"context"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/go-logr/logr/funcr"
)

func double() *FuncPiece[int] {
	return Map("double", "x", "y", func(v int) (int, error) { return 2 * v, nil })
}

func TestInterceptorChain(t *testing.T) {
	t.Run("empty chain computes directly", func(t *testing.T) {
		out, err := ChainInterceptors[int]().Execute(context.Background(), double(), Values[int]{"x": 2})
		assert.NoError(t, err)
		assert.Equal(t, Values[int]{"y": 4}, out)
	})

	t.Run("nil chain computes directly", func(t *testing.T) {
		var chain *InterceptorChain[int]
		assert.Equal(t, 0, chain.Len())
		out, err := chain.Execute(context.Background(), double(), Values[int]{"x": 3})
		assert.NoError(t, err)
		assert.Equal(t, Values[int]{"y": 6}, out)
	})

	t.Run("outer to inner", func(t *testing.T) {
		var calls []string
		record := func(name string) Interceptor[int] {
			return func(ctx context.Context, p Piece[int], in Values[int], handler Handler[int]) (Values[int], error) {
				calls = append(calls, name+":before")
				out, err := handler(ctx, in)
				calls = append(calls, name+":after")
				return out, err
			}
		}

		chain := ChainInterceptors(record("first"), record("second"))
		assert.Equal(t, 2, chain.Len())

		_, err := chain.Execute(context.Background(), double(), Values[int]{"x": 1})
		assert.NoError(t, err)
		assert.Equal(t, []string{"first:before", "second:before", "second:after", "first:after"}, calls)
	})

	t.Run("interceptor rewrites inputs", func(t *testing.T) {
		offset := func(ctx context.Context, p Piece[int], in Values[int], handler Handler[int]) (Values[int], error) {
			return handler(ctx, Values[int]{"x": in["x"] + 10})
		}
		out, err := ChainInterceptors(offset).Execute(context.Background(), double(), Values[int]{"x": 1})
		assert.NoError(t, err)
		assert.Equal(t, Values[int]{"y": 22}, out)
	})
}

func TestLoggingInterceptor(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	chain := ChainInterceptors(LoggingInterceptor[int](log))

	_, err := chain.Execute(context.Background(), double(), Values[int]{"x": 1})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(lines))
	assert.Contains(t, lines[0], `"msg"="Computing piece"`)
	assert.Contains(t, lines[1], `"msg"="Computation succeeded"`)

	lines = nil
	_, err = chain.Execute(context.Background(), double(), Values[int]{})
	assert.True(t, errors.Is(err, ErrMissingInput))
	assert.Equal(t, 2, len(lines))
	assert.Contains(t, lines[1], `"msg"="Computation failed"`)
}
