package rank

import (
	"errors"
	"math"
	"testing"

	"github.com/papapumpkin/magnetar/internal/graph"
)

// build constructs a graph from a page → links map, failing the test on
// any builder error.
func build(t *testing.T, m map[string][]string) *graph.Graph {
	t.Helper()
	g, err := graph.FromMap(m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	return g
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestTransition(t *testing.T) {
	t.Parallel()

	t.Run("linked page splits damping mass", func(t *testing.T) {
		t.Parallel()
		g := build(t, map[string][]string{
			"a.html": {"b.html", "c.html"},
			"b.html": {"a.html"},
			"c.html": {"a.html"},
		})
		dist, err := Transition(g, "a.html", 0.85)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}

		// b and c each get 0.85/2 link mass plus 0.15/3 jump mass; a gets
		// jump mass only.
		if want := 0.85/2 + 0.15/3; !approx(dist["b.html"], want, 1e-12) {
			t.Errorf("dist[b.html] = %v, want %v", dist["b.html"], want)
		}
		if want := 0.15 / 3; !approx(dist["a.html"], want, 1e-12) {
			t.Errorf("dist[a.html] = %v, want %v", dist["a.html"], want)
		}
		if !approx(dist.Sum(), 1.0, 1e-12) {
			t.Errorf("Sum() = %v, want 1.0", dist.Sum())
		}
		if len(dist) != g.Len() {
			t.Errorf("distribution covers %d pages, want %d", len(dist), g.Len())
		}
	})

	t.Run("dangling page is uniform", func(t *testing.T) {
		t.Parallel()
		g := build(t, map[string][]string{
			"a.html": {"b.html"},
			"b.html": nil,
			"c.html": {"a.html"},
		})
		dist, err := Transition(g, "b.html", 0.85)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		for _, id := range g.Pages() {
			if want := 1.0 / 3; !approx(dist[id], want, 1e-12) {
				t.Errorf("dist[%s] = %v, want %v", id, dist[id], want)
			}
		}
	})

	t.Run("damping zero is uniform everywhere", func(t *testing.T) {
		t.Parallel()
		g := build(t, map[string][]string{
			"a.html": {"b.html"},
			"b.html": {"a.html"},
		})
		dist, err := Transition(g, "a.html", 0)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if !approx(dist["a.html"], 0.5, 1e-12) || !approx(dist["b.html"], 0.5, 1e-12) {
			t.Errorf("dist = %v, want uniform 0.5", dist)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		t.Parallel()
		g := build(t, map[string][]string{"a.html": nil})
		if _, err := Transition(g, "ghost.html", 0.85); !errors.Is(err, graph.ErrPageNotFound) {
			t.Errorf("got %v, want ErrPageNotFound", err)
		}
	})

	t.Run("damping out of range", func(t *testing.T) {
		t.Parallel()
		g := build(t, map[string][]string{"a.html": nil})
		if _, err := Transition(g, "a.html", 1.5); err == nil {
			t.Error("damping 1.5 accepted, want error")
		}
		if _, err := Transition(g, "a.html", -0.1); err == nil {
			t.Error("damping -0.1 accepted, want error")
		}
	})

	t.Run("empty graph", func(t *testing.T) {
		t.Parallel()
		if _, err := Transition(graph.New(), "a.html", 0.85); !errors.Is(err, graph.ErrEmptyGraph) {
			t.Errorf("got %v, want ErrEmptyGraph", err)
		}
	})
}
