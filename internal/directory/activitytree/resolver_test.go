package activitytree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacency is a ChildLister over a literal parent → children map.
type adjacency map[int64][]int64

func (a adjacency) ActivityChildIDs(_ context.Context, parentIDs []int64) ([]int64, error) {
	var out []int64
	for _, p := range parentIDs {
		out = append(out, a[p]...)
	}
	return out, nil
}

type failingLister struct{ err error }

func (f failingLister) ActivityChildIDs(context.Context, []int64) ([]int64, error) {
	return nil, f.err
}

func TestDescendantIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("leaf returns only itself", func(t *testing.T) {
		r := New(adjacency{})
		ids, err := r.DescendantIDs(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, ids)
	})

	t.Run("includes three levels and excludes the fourth", func(t *testing.T) {
		// 1 → 2 → 3 → 4 → 5: with the default limit only levels 1..3 survive.
		tree := adjacency{1: {2}, 2: {3}, 3: {4}, 4: {5}}
		r := New(tree)
		ids, err := r.DescendantIDs(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2, 3}, ids)
	})

	t.Run("collects wide trees level by level", func(t *testing.T) {
		tree := adjacency{
			1:  {10, 11},
			10: {100, 101},
			11: {110},
			// grandchildren's children are beyond the limit
			100: {1000},
		}
		r := New(tree)
		ids, err := r.DescendantIDs(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 10, 11, 100, 101, 110}, ids)
	})

	t.Run("does not revisit nodes on malformed cyclic data", func(t *testing.T) {
		tree := adjacency{1: {2}, 2: {1, 3}}
		r := New(tree)
		ids, err := r.DescendantIDs(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2, 3}, ids)
	})

	t.Run("dedupes diamond links", func(t *testing.T) {
		tree := adjacency{1: {2, 3}, 2: {4}, 3: {4}}
		r := New(tree)
		ids, err := r.DescendantIDs(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2, 3, 4}, ids)
	})

	t.Run("custom depth of one returns the root alone", func(t *testing.T) {
		tree := adjacency{1: {2}}
		r := NewWithDepth(tree, 1)
		ids, err := r.DescendantIDs(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids)
	})

	t.Run("propagates lister failures", func(t *testing.T) {
		cause := errors.New("store down")
		r := New(failingLister{err: cause})
		_, err := r.DescendantIDs(ctx, 1)
		assert.ErrorIs(t, err, cause)
	})
}
