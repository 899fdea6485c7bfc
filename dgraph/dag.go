// File: dag.go
// Role: DAG — the subset of Graph operations that require acyclicity:
// transitive reduction, topological sort, and the filter/ideal down-/
// up-set queries Bordat diagram construction and precedence reduction
// rely on.
package dgraph

import "sort"

// DAG wraps a Graph known to be acyclic. Obtain one with AsDAG or
// StronglyConnectedComponents (whose condensation is acyclic by
// construction).
type DAG[N any, E comparable] struct {
	*Graph[N, E]
}

// AsDAG verifies g is acyclic and wraps it. Returns ErrNotAcyclic if g
// contains a cycle. The wrapped DAG
// shares g's storage; further mutation of g (or the DAG) is the caller's
// responsibility to keep acyclic — this module's builders never mutate a
// DAG after construction.
func AsDAG[N any, E comparable](g *Graph[N, E]) (*DAG[N, E], error) {
	if hasCycle(g) {
		return nil, ErrNotAcyclic
	}

	return &DAG[N, E]{Graph: g}, nil
}

const (
	white = iota
	gray
	black
)

// hasCycle runs the standard three-color DFS cycle check (White/Gray/Black
// node marking): a back-edge into a Gray node means a cycle.
func hasCycle[N any, E comparable](g *Graph[N, E]) bool {
	state := make(map[string]int, g.NodeCount())

	var visit func(v string) bool
	visit = func(v string) bool {
		state[v] = gray
		for _, w := range g.Successors(v) {
			switch state[w] {
			case gray:
				return true
			case white:
				if visit(w) {
					return true
				}
			}
		}
		state[v] = black

		return false
	}

	for _, v := range g.Nodes() {
		if state[v] == white {
			if visit(v) {
				return true
			}
		}
	}

	return false
}

// TransitiveReduction removes every edge u -> v for which an alternative
// path u -> ... -> v (length >= 2) already exists, leaving the Hasse
// diagram of the order the edges encode. Returns the number of edges
// removed. Reachability is computed once up front, so removals made
// mid-pass cannot hide a redundancy from a later check.
func (d *DAG[N, E]) TransitiveReduction() int {
	edges := d.Edges()

	origSucc := make(map[string][]string, d.NodeCount())
	for _, e := range edges {
		origSucc[e.From] = append(origSucc[e.From], e.To)
	}

	desc := make(map[string]map[string]struct{}, d.NodeCount())
	for _, u := range d.Nodes() {
		m := make(map[string]struct{})
		for _, v := range d.reachableFrom(u) {
			m[v] = struct{}{}
		}
		desc[u] = m
	}

	removed := 0
	for _, e := range edges {
		redundant := false
		for _, w := range origSucc[e.From] {
			if w == e.To {
				continue
			}
			if _, ok := desc[w][e.To]; ok {
				redundant = true

				break
			}
		}
		if redundant {
			if err := d.RemoveEdge(e.From, e.To, e.Content); err == nil {
				removed++
			}
		}
	}

	return removed
}

// TopologicalSort returns a total order over the DAG's nodes consistent
// with every edge (u appears before v for every edge u -> v), breaking
// ties by ascending node ID.
func (d *DAG[N, E]) TopologicalSort() []string {
	ids := d.Nodes() // already ascending
	indegree := make(map[string]int, len(ids))
	for _, id := range ids {
		indegree[id] = len(d.Predecessors(id))
	}

	order := make([]string, 0, len(ids))
	for len(order) < len(ids) {
		placed := ""
		for _, id := range ids {
			if indegree[id] == 0 {
				placed = id

				break
			}
		}
		// placed is always found: d is acyclic, so some node has indegree 0
		// among those not yet placed (indegree[placed]==-1 marks "placed").
		order = append(order, placed)
		indegree[placed] = -1
		for _, nbr := range d.Successors(placed) {
			if indegree[nbr] > 0 {
				indegree[nbr]--
			}
		}
	}

	return order
}

// Filter returns the descendants of n plus n itself, sorted ascending.
func (d *DAG[N, E]) Filter(n string) []string {
	out := append([]string{n}, d.reachableFrom(n)...)
	sort.Strings(out)

	return out
}

// Ideal returns the ancestors of n plus n itself, sorted ascending.
func (d *DAG[N, E]) Ideal(n string) []string {
	visited := make(map[string]struct{})
	stack := []string{n}
	for len(stack) > 0 {
		last := len(stack) - 1
		cur := stack[last]
		stack = stack[:last]
		for _, p := range d.Predecessors(cur) {
			if _, seen := visited[p]; !seen {
				visited[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}

	out := make([]string, 0, len(visited)+1)
	out = append(out, n)
	for id := range visited {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
