// Package rank estimates the relative importance of pages in a link graph
// with two independent PageRank estimators: a Monte-Carlo random-surfer
// sampler and a deterministic iterative fixed-point solver. Both share the
// same transition-probability model and the same dangling-page policy.
package rank

import "errors"

// ErrNoConvergence is returned when the iterative solver hits its iteration
// ceiling before the ranks stabilize.
var ErrNoConvergence = errors.New("rank did not converge")

// Distribution is a probability distribution over pages: non-negative values
// summing to 1.0 across exactly the page set of the graph that produced it.
type Distribution map[string]float64

// Table maps each page to its estimated PageRank in [0, 1]. A full table
// sums to 1.0 across the page set.
type Table map[string]float64

// Sum returns the total mass of the distribution.
func (d Distribution) Sum() float64 {
	var total float64
	for _, p := range d {
		total += p
	}
	return total
}

// Sum returns the total rank across all pages.
func (t Table) Sum() float64 {
	var total float64
	for _, r := range t {
		total += r
	}
	return total
}
