// Package activitytree computes the depth-limited descendant closure of an
// activity. Traversal is an explicit breadth-first queue with a visited set,
// so it terminates even on malformed (cyclic) data and never recurses.
package activitytree

import (
	"context"
	"fmt"
)

// DefaultDepthLimit bounds traversal to three tree levels: the root counts as
// level 1, so its children and grandchildren are included and nothing deeper.
const DefaultDepthLimit = 3

// ChildLister supplies the immediate children of a set of activities in one
// round trip per tree level.
type ChildLister interface {
	ActivityChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
}

// Resolver walks the parent-linked activity forest through a ChildLister.
type Resolver struct {
	children ChildLister
	depth    int
}

// New builds a Resolver with the default depth limit.
func New(children ChildLister) *Resolver {
	return &Resolver{children: children, depth: DefaultDepthLimit}
}

// NewWithDepth builds a Resolver with a custom depth limit. depthLimit < 1 is
// treated as 1 (the root alone).
func NewWithDepth(children ChildLister, depthLimit int) *Resolver {
	if depthLimit < 1 {
		depthLimit = 1
	}
	return &Resolver{children: children, depth: depthLimit}
}

// DescendantIDs returns the ids reachable from rootID within the depth limit,
// root included. The root's existence is the caller's concern: an unknown id
// simply yields a one-element set. Nodes already collected are never expanded
// again, which keeps the walk finite on data that violates the acyclicity
// invariant.
func (r *Resolver) DescendantIDs(ctx context.Context, rootID int64) ([]int64, error) {
	visited := map[int64]struct{}{rootID: {}}
	result := []int64{rootID}
	frontier := []int64{rootID}

	for depth := 1; depth < r.depth && len(frontier) > 0; depth++ {
		childIDs, err := r.children.ActivityChildIDs(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("list activity children at depth %d: %w", depth+1, err)
		}

		next := make([]int64, 0, len(childIDs))
		for _, id := range childIDs {
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			result = append(result, id)
			next = append(next, id)
		}
		frontier = next
	}

	return result, nil
}
