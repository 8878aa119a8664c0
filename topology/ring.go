// impl: Ring(n, skip) — n-node cycle with optional skip-distance chords.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); n above MaxRingNodes clamps with a warning.
//   - skip clamps to [1, n/2] with a warning; generation always proceeds.
//   - Base cycle edges (i, (i+1) mod n) for all i, only when n > 1.
//   - Chord edges (i, (i+skip) mod n) for all i, only when skip > 1 and n ≥ 3.
//   - Dedup via core's canonical-pair set: a chord coinciding with a ring
//     edge, or the antipodal chord met from both ends (skip = n/2, even n),
//     is stored once.
//
// Complexity: O(n) nodes + O(n) edge emissions.

package topology

import (
	"fmt"

	"github.com/icnlab/topograph/core"
)

// BuildRing builds a ring of n nodes with chords at the given skip distance.
func BuildRing(n, skip int, opts ...Option) (*core.Graph, error) {
	o := newBuildOptions(opts...)

	if n < MinRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRing, n, MinRingNodes, ErrTooFewNodes)
	}
	n = o.clamp(MethodRing, "nodes", n, MinRingNodes, MaxRingNodes)

	// Largest meaningful skip is n/2; beyond it chords repeat mirrored pairs.
	maxSkip := n / 2
	if maxSkip < MinSkip {
		maxSkip = MinSkip
	}
	skip = o.clamp(MethodRing, "skip", skip, MinSkip, maxSkip)

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddNode(core.Node{ID: i}); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", MethodRing, i, err)
		}
	}

	// Base cycle. For n=2 both directions collapse to the single edge {0,1}.
	if n > 1 {
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(i, (i+1)%n); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodRing, i, (i+1)%n, err)
			}
		}
	}

	// Chords.
	if skip > 1 && n >= 3 {
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(i, (i+skip)%n); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodRing, i, (i+skip)%n, err)
			}
		}
	}

	return g, nil
}
