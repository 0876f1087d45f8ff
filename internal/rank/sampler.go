package rank

import (
	"fmt"
	"math/rand/v2"

	"github.com/papapumpkin/magnetar/internal/graph"
)

// SamplerOptions configures the Monte-Carlo PageRank estimator.
type SamplerOptions struct {
	Damping float64    // damping factor; typically 0.85
	Samples int        // number of surfer steps, including the start page
	Rand    *rand.Rand // random source; nil means an unseeded default
}

// DefaultSamplerOptions returns production-ready defaults:
// damping 0.85, 10000 samples, unseeded randomness.
func DefaultSamplerOptions() SamplerOptions {
	return SamplerOptions{
		Damping: 0.85,
		Samples: 10000,
	}
}

// Sample estimates PageRank by simulating a single random surfer for
// opts.Samples steps. The walk starts on a uniformly random page; every
// subsequent step draws the next page from the transition model of the
// current one. Each page's rank is its visit count divided by the total
// number of samples, so the table sums to exactly 1.0.
//
// Results vary between runs unless opts.Rand is seeded. Pages never visited
// appear in the table with rank 0.
func Sample(g *graph.Graph, opts SamplerOptions) (Table, error) {
	if opts.Samples < 1 {
		return nil, fmt.Errorf("sample count %d, need at least 1", opts.Samples)
	}
	if opts.Damping < 0 || opts.Damping > 1 {
		return nil, fmt.Errorf("damping factor %v outside [0, 1]", opts.Damping)
	}
	if g.Len() == 0 {
		return nil, graph.ErrEmptyGraph
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	pages := g.Pages()
	visits := make(map[string]int, len(pages))
	for _, id := range pages {
		visits[id] = 0
	}

	current := pages[rng.IntN(len(pages))]
	visits[current]++

	for i := 1; i < opts.Samples; i++ {
		dist, err := Transition(g, current, opts.Damping)
		if err != nil {
			return nil, err
		}
		current = draw(pages, dist, rng.Float64())
		visits[current]++
	}

	table := make(Table, len(pages))
	total := float64(opts.Samples)
	for id, count := range visits {
		table[id] = float64(count) / total
	}
	return table, nil
}

// draw selects a page from a categorical distribution by inverting its
// cumulative distribution at u, a uniform [0,1) value. Pages are scanned in
// sorted order so a seeded run is fully reproducible.
func draw(pages []string, dist Distribution, u float64) string {
	var cum float64
	for _, id := range pages {
		cum += dist[id]
		if u < cum {
			return id
		}
	}
	// Floating-point shortfall: the cumulative sum landed a hair under 1.
	return pages[len(pages)-1]
}
