package rank

import (
	"fmt"
	"math"

	"github.com/papapumpkin/magnetar/internal/graph"
)

// IteratorOptions configures the iterative PageRank solver.
type IteratorOptions struct {
	Damping       float64 // damping factor; typically 0.85
	Tolerance     float64 // per-page convergence threshold
	MaxIterations int     // upper bound on iterations
	Initial       Table   // optional warm-start ranks; nil means uniform 1/N
}

// DefaultIteratorOptions returns production-ready defaults:
// damping 0.85, tolerance 0.001, max 100 iterations.
func DefaultIteratorOptions() IteratorOptions {
	return IteratorOptions{
		Damping:       0.85,
		Tolerance:     0.001,
		MaxIterations: 100,
	}
}

// Iterate computes PageRank by repeated application of the recurrence
//
//	rank[p] = (1-d)/N + d * Σ over parents q of p ( rank[q] / outDegree(q) )
//
// until every page's rank changes by at most opts.Tolerance between two
// consecutive iterations.
//
// Dangling pages are handled by a one-time preprocessing step that rewrites
// them, in a private working copy of the graph, to link to every page. The
// caller's graph is never modified. Returns ErrNoConvergence if the ranks
// have not stabilized within opts.MaxIterations.
func Iterate(g *graph.Graph, opts IteratorOptions) (Table, error) {
	if opts.Damping < 0 || opts.Damping > 1 {
		return nil, fmt.Errorf("damping factor %v outside [0, 1]", opts.Damping)
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("tolerance %v, need > 0", opts.Tolerance)
	}
	if opts.MaxIterations < 1 {
		return nil, fmt.Errorf("max iterations %d, need at least 1", opts.MaxIterations)
	}
	n := g.Len()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}

	working := g.PatchDangling()
	pages := working.Pages()

	// The working graph is fixed for the whole run; resolve parent lists and
	// out-degrees once instead of on every iteration.
	parents := make(map[string][]string, n)
	outDeg := make(map[string]float64, n)
	for _, id := range pages {
		parents[id] = working.Parents(id)
		outDeg[id] = float64(working.OutDegree(id))
	}

	nf := float64(n)
	base := (1 - opts.Damping) / nf

	ranks := make(Table, n)
	if opts.Initial != nil {
		for _, id := range pages {
			ranks[id] = opts.Initial[id]
		}
	} else {
		initial := 1.0 / nf
		for _, id := range pages {
			ranks[id] = initial
		}
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		next := make(Table, n)
		for _, p := range pages {
			var sum float64
			for _, q := range parents[p] {
				sum += ranks[q] / outDeg[q]
			}
			next[p] = base + opts.Damping*sum
		}

		converged := true
		for _, id := range pages {
			if math.Abs(next[id]-ranks[id]) > opts.Tolerance {
				converged = false
				break
			}
		}
		if converged {
			return next, nil
		}
		ranks = next
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNoConvergence, opts.MaxIterations)
}
