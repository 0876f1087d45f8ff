// Package graph provides an immutable-by-convention directed graph of pages
// and the links between them. It maintains both forward and reverse adjacency
// so rank algorithms can walk children and parents in O(degree).
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrPageNotFound is returned when an operation references a non-existent page.
var ErrPageNotFound = errors.New("page not found")

// ErrDuplicatePage is returned when adding a page that already exists.
var ErrDuplicatePage = errors.New("duplicate page")

// ErrSelfLink is returned when a link would point a page at itself.
var ErrSelfLink = errors.New("self-referencing link")

// ErrEmptyGraph is returned by consumers that cannot operate on a graph
// with zero pages.
var ErrEmptyGraph = errors.New("empty graph")

// Graph represents a directed graph of pages. Edges point from a page to the
// pages it links to. Unlike a dependency DAG, cycles are expected and legal.
//
// Once handed to a rank algorithm a Graph is treated as read-only; algorithms
// that need a modified view (see PatchDangling) work on their own copy.
type Graph struct {
	pages map[string]bool
	// links maps pageID → set of linked page IDs (forward edges).
	links map[string]map[string]bool
	// parents maps pageID → set of pages linking to it (backward edges).
	parents map[string]map[string]bool
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		pages:   make(map[string]bool),
		links:   make(map[string]map[string]bool),
		parents: make(map[string]map[string]bool),
	}
}

// AddPage adds a page with the given ID. Returns ErrDuplicatePage if a page
// with that ID already exists.
func (g *Graph) AddPage(id string) error {
	if g.pages[id] {
		return fmt.Errorf("%w: %s", ErrDuplicatePage, id)
	}
	g.pages[id] = true
	g.links[id] = make(map[string]bool)
	g.parents[id] = make(map[string]bool)
	return nil
}

// AddLink adds a link from one page to another. Both pages must already
// exist. Returns an error if either page is missing or the link would be a
// self-reference. Adding an existing link is a no-op.
func (g *Graph) AddLink(from, to string) error {
	if from == to {
		return fmt.Errorf("%w: %s", ErrSelfLink, from)
	}
	if !g.pages[from] {
		return fmt.Errorf("%w: %s", ErrPageNotFound, from)
	}
	if !g.pages[to] {
		return fmt.Errorf("%w: %s", ErrPageNotFound, to)
	}
	g.links[from][to] = true
	g.parents[to][from] = true
	return nil
}

// FromMap builds a Graph from a page → outbound-links mapping, as produced
// by the corpus loader. Every link target must itself be a key of the map
// and no page may link to itself.
func FromMap(m map[string][]string) (*Graph, error) {
	g := New()
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := g.AddPage(id); err != nil {
			return nil, err
		}
	}
	for _, id := range ids {
		for _, target := range m[id] {
			if err := g.AddLink(id, target); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Has reports whether the graph contains the given page.
func (g *Graph) Has(id string) bool {
	return g.pages[id]
}

// Len returns the number of pages in the graph.
func (g *Graph) Len() int {
	return len(g.pages)
}

// Pages returns all page IDs, sorted lexicographically.
func (g *Graph) Pages() []string {
	ids := make([]string, 0, len(g.pages))
	for id := range g.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Links returns the IDs of the pages that id links to, sorted
// lexicographically. Returns nil if the page does not exist.
func (g *Graph) Links(id string) []string {
	set, ok := g.links[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for target := range set {
		out = append(out, target)
	}
	sort.Strings(out)
	return out
}

// Parents returns the IDs of the pages linking to id, sorted
// lexicographically. Returns nil if the page does not exist.
func (g *Graph) Parents(id string) []string {
	set, ok := g.parents[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for src := range set {
		out = append(out, src)
	}
	sort.Strings(out)
	return out
}

// LinkCount returns the total number of links in the graph.
func (g *Graph) LinkCount() int {
	var total int
	for _, set := range g.links {
		total += len(set)
	}
	return total
}

// OutDegree returns the number of outbound links of a page, or 0 for an
// unknown page.
func (g *Graph) OutDegree(id string) int {
	return len(g.links[id])
}

// IsDangling reports whether a page exists and has no outbound links.
func (g *Graph) IsDangling(id string) bool {
	set, ok := g.links[id]
	return ok && len(set) == 0
}

// PatchDangling returns a copy of the graph in which every dangling page
// links to the full page set, itself included. The receiver is never
// modified, so a graph shared with other callers stays intact.
//
// The copy deliberately bypasses the self-link rule: a dangling page that
// links to everything keeps a share of its own rank, which is exactly the
// uniform redistribution the iterative solver expects.
func (g *Graph) PatchDangling() *Graph {
	patched := New()
	for id := range g.pages {
		patched.pages[id] = true
		patched.links[id] = make(map[string]bool, len(g.links[id]))
		patched.parents[id] = make(map[string]bool, len(g.parents[id]))
	}
	for id, set := range g.links {
		if len(set) == 0 {
			for target := range g.pages {
				patched.links[id][target] = true
				patched.parents[target][id] = true
			}
			continue
		}
		for target := range set {
			patched.links[id][target] = true
			patched.parents[target][id] = true
		}
	}
	return patched
}
