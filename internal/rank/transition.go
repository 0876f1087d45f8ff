package rank

import (
	"fmt"

	"github.com/papapumpkin/magnetar/internal/graph"
)

// Transition returns the probability distribution over which page a random
// surfer visits next, given the current page.
//
// With probability damping the surfer follows one of the current page's
// outbound links, chosen uniformly. With probability 1-damping the surfer
// jumps to a uniformly random page of the whole graph. A dangling page (no
// outbound links) yields the uniform distribution over all pages, the same
// redistribution the iterative solver applies.
//
// The result always sums to 1.0 and covers exactly the graph's page set.
func Transition(g *graph.Graph, page string, damping float64) (Distribution, error) {
	if damping < 0 || damping > 1 {
		return nil, fmt.Errorf("damping factor %v outside [0, 1]", damping)
	}
	n := g.Len()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}
	if !g.Has(page) {
		return nil, fmt.Errorf("%w: %s", graph.ErrPageNotFound, page)
	}

	dist := make(Distribution, n)
	jump := (1 - damping) / float64(n)

	links := g.Links(page)
	if len(links) == 0 {
		// Dangling page: the surfer jumps uniformly regardless of damping.
		uniform := 1.0 / float64(n)
		for _, id := range g.Pages() {
			dist[id] = uniform
		}
		return dist, nil
	}

	for _, id := range g.Pages() {
		dist[id] = jump
	}
	follow := damping / float64(len(links))
	for _, target := range links {
		dist[target] += follow
	}
	return dist, nil
}
