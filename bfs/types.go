// Package bfs option and result types, plus sentinel errors.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution and path reconstruction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start node ID is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo when the target was not reached
	// from the start node. This is the normal disconnected-graph outcome.
	ErrUnreachable = errors.New("bfs: target unreachable from start")

	// ErrCorruptParent is returned by PathTo when the predecessor chain is
	// broken or exceeds its safety bound. It signals an invariant violation
	// (a parent map not produced by a correct BFS), never a missing path.
	ErrCorruptParent = errors.New("bfs: inconsistent parent chain")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation on BFS.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this hop distance.
	// 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a node is dequeued for visiting. A returned
	// error aborts the search and propagates to the caller.
	OnVisit func(id, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(int, int) error { return nil },
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search past the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run per visited node; returning an error
// from the callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal from Start.
type Result struct {
	// Start is the source node of the traversal.
	Start int

	// Order lists nodes in visit sequence; Order[0] == Start.
	Order []int

	// Dist maps each reached node to its hop distance from Start.
	// A node absent from Dist was not reached.
	Dist map[int]int

	// Parent maps each reached node (except Start) to its BFS-tree
	// predecessor.
	Parent map[int]int
}

// Reached reports whether id was reached from Start.
func (r *Result) Reached(id int) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs the shortest path Start → target as an ordered node
// sequence.
//
// Returns ErrUnreachable when target was never reached (no path exists),
// and ErrCorruptParent when the predecessor chain breaks or exceeds
// len(Dist) steps before arriving at Start; both indicate input not
// produced by a correct BFS and must never occur for this Result's own
// traversal output.
// Complexity: O(path length).
func (r *Result) PathTo(target int) ([]int, error) {
	if !r.Reached(target) {
		return nil, fmt.Errorf("PathTo(%d): %w", target, ErrUnreachable)
	}

	// Walk backward with a safety bound: a valid chain cannot be longer
	// than the number of reached nodes.
	path := []int{target}
	cur := target
	for steps := 0; cur != r.Start; steps++ {
		if steps >= len(r.Dist) {
			return nil, fmt.Errorf("PathTo(%d): chain exceeds %d steps: %w", target, len(r.Dist), ErrCorruptParent)
		}
		prev, ok := r.Parent[cur]
		if !ok {
			return nil, fmt.Errorf("PathTo(%d): no parent for %d: %w", target, cur, ErrCorruptParent)
		}
		cur = prev
		path = append(path, cur)
	}

	// Reverse in place: built target → start, want start → target.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
