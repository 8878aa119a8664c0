package bfs

import (
	"fmt"

	"github.com/icnlab/topograph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   map[int][]int
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFS: start=%d: %w", start, ErrStartNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		adj:   g.AdjacencyList(),
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Dist:   make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed the frontier with the start node at distance 0.
	w.res.Dist[start] = 0
	w.queue = append(w.queue, queueItem{id: start, depth: 0})

	return w.res, w.loop()
}

// loop processes the FIFO frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// Cancellation check, once per dequeue.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors relaxes each unseen neighbor of item: records distance
// and parent, then appends it to the frontier.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	for _, nbr := range w.adj[item.id] {
		if _, seen := w.res.Dist[nbr]; seen {
			continue
		}
		w.res.Dist[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem{id: nbr, depth: nextDepth})
	}
}
