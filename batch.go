package jigsaw

import (
	"context"

	"github.com/birdayz/jigsaw/kpiece"
	"golang.org/x/sync/errgroup"
)

// ComputeBatch computes p once for every input set in batch, running up to
// limit computations concurrently (unbounded if limit <= 0). Results are
// aligned with batch. The first error cancels the context handed to the
// remaining computations and is returned.
//
// Each computation only reads p, so p and its components must be safe for
// concurrent use. A Composite of stateless pieces is.
func ComputeBatch[V any](ctx context.Context, p kpiece.Piece[V], batch []kpiece.Values[V], limit int) ([]kpiece.Values[V], error) {
	results := make([]kpiece.Values[V], len(batch))

	grp, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		grp.SetLimit(limit)
	}

	for i, in := range batch {
		grp.Go(func() error {
			out, err := p.Compute(ctx, in)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
