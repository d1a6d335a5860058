package jigsaw

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/jigsaw/kpiece"
)

func TestComputeBatch(t *testing.T) {
	ab, bc, cd := chain()
	c := MustNew(pieces(ab, bc, cd))

	batch := make([]kpiece.Values[string], 20)
	for i := range batch {
		batch[i] = kpiece.Values[string]{"a": fmt.Sprint(i)}
	}

	for _, limit := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			results, err := ComputeBatch[string](context.Background(), c, batch, limit)
			assert.NoError(t, err)
			assert.Equal(t, len(batch), len(results))
			for i, out := range results {
				assert.Equal(t, fmt.Sprintf("cd(bc(ab(%d)))", i), out["d"])
			}
		})
	}

	t.Run("error", func(t *testing.T) {
		batch := []kpiece.Values[string]{{"a": "ok"}, {"b": "no a"}}
		results, err := ComputeBatch[string](context.Background(), c, batch, 1)
		assert.Zero(t, results)
		assert.True(t, errors.Is(err, kpiece.ErrMissingInput))
	})

	t.Run("empty batch", func(t *testing.T) {
		results, err := ComputeBatch[string](context.Background(), c, nil, 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(results))
	})
}
