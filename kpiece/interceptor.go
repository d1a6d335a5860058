package kpiece

import (
	"context"

	"github.com/go-logr/logr"
)

// Handler computes the outputs of one piece.
type Handler[V any] func(ctx context.Context, in Values[V]) (Values[V], error)

// Interceptor wraps the computation of a piece with custom logic.
// Signature follows gRPC's interceptor pattern: (ctx, req, handler) -> resp.
type Interceptor[V any] func(
	ctx context.Context,
	p Piece[V],
	in Values[V],
	handler Handler[V],
) (Values[V], error)

// InterceptorChain manages multiple interceptors in execution order
type InterceptorChain[V any] struct {
	interceptors []Interceptor[V]
}

// ChainInterceptors creates a new interceptor chain
func ChainInterceptors[V any](interceptors ...Interceptor[V]) *InterceptorChain[V] {
	return &InterceptorChain[V]{
		interceptors: interceptors,
	}
}

// Len returns the number of interceptors in the chain.
func (c *InterceptorChain[V]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.interceptors)
}

// Execute runs the interceptor chain around p.Compute.
// Interceptors execute outer-to-inner (first interceptor wraps all others)
func (c *InterceptorChain[V]) Execute(ctx context.Context, p Piece[V], in Values[V]) (Values[V], error) {
	if c.Len() == 0 {
		return p.Compute(ctx, in)
	}

	// Build handler chain from innermost to outermost
	var handler Handler[V] = p.Compute
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		interceptor := c.interceptors[i]
		next := handler
		handler = func(ctx context.Context, in Values[V]) (Values[V], error) {
			return interceptor(ctx, p, in, next)
		}
	}

	return handler(ctx, in)
}

// LoggingInterceptor logs before and after each computation at verbosity 1.
func LoggingInterceptor[V any](log logr.Logger) Interceptor[V] {
	return func(ctx context.Context, p Piece[V], in Values[V], handler Handler[V]) (Values[V], error) {
		name := NameOf(p)
		log.V(1).Info("Computing piece", "piece", name, "inputs", p.Inputs())

		out, err := handler(ctx, in)

		if err != nil {
			log.Error(err, "Computation failed", "piece", name)
		} else {
			log.V(1).Info("Computation succeeded", "piece", name, "outputs", len(out))
		}

		return out, err
	}
}
