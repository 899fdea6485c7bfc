// File: scc.go
// Role: Tarjan's strongly-connected-components algorithm, producing the
// condensation as a DAG whose nodes own the ordered set of original node
// IDs they collapse. Used directly by closure.ReducibleElements's SCC-collapse
// step and exposed as a general dgraph operation.
//
// Tarjan's algorithm is a single DFS pass maintaining a discovery index,
// a lowlink value, and an explicit stack of "still open" nodes; a node
// closes a component when its lowlink equals its own index. Uses the same
// three-color DFS shape (White/Gray/Black via an index map) as the rest of
// this package's traversals, adapted here to also track lowlink and the
// onStack set Tarjan needs.
package dgraph

import (
	"fmt"
	"sort"

	"github.com/go-fca/lattice/order"
)

type tarjanState struct {
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	counter int
	comps   [][]string
}

// StronglyConnectedComponents partitions the graph's nodes into maximal
// sets of mutually reachable nodes and returns the condensation: one
// DAG node per component, its content an order.Set[string] of the
// original member IDs, with an edge between condensation nodes iff some
// edge in g crosses between their respective components. The condensation
// is acyclic by construction (a cycle across components would have merged
// them into one).
func (g *Graph[N, E]) StronglyConnectedComponents() *DAG[*order.Set[string], E] {
	st := &tarjanState{
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}

	for _, v := range g.Nodes() {
		if _, visited := st.index[v]; !visited {
			g.tarjanVisit(v, st)
		}
	}

	return g.buildCondensation(st.comps)
}

func (g *Graph[N, E]) tarjanVisit(v string, st *tarjanState) {
	st.index[v] = st.counter
	st.lowlink[v] = st.counter
	st.counter++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, w := range g.Successors(v) {
		if _, visited := st.index[w]; !visited {
			g.tarjanVisit(w, st)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}
	}

	if st.lowlink[v] != st.index[v] {
		return
	}

	// v is the root of a component: pop the stack down to and including v.
	var comp []string
	for {
		n := len(st.stack) - 1
		w := st.stack[n]
		st.stack = st.stack[:n]
		st.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	sort.Strings(comp)
	st.comps = append(st.comps, comp)
}

func strLess(a, b string) bool { return a < b }

// buildCondensation assigns each component a deterministic ID (its
// lexicographically smallest member, prefixed to avoid colliding with an
// original node's own ID) and wires condensation edges for every
// cross-component edge of g.
func (g *Graph[N, E]) buildCondensation(comps [][]string) *DAG[*order.Set[string], E] {
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	out := New[*order.Set[string], E]()
	memberOf := make(map[string]string, g.NodeCount())
	for _, comp := range comps {
		id := fmt.Sprintf("scc:%s", comp[0])
		members := order.NewSetFrom(strLess, comp...)
		_ = out.AddNode(id, members)
		for _, m := range comp {
			memberOf[m] = id
		}
	}

	var zero E
	for _, e := range g.Edges() {
		cu, cv := memberOf[e.From], memberOf[e.To]
		if cu != cv {
			_, _ = out.AddEdge(cu, cv, zero)
		}
	}

	// The condensation is acyclic by construction: AsDAG only verifies it.
	dag, err := AsDAG(out)
	if err != nil {
		// Unreachable for a correct Tarjan implementation; a panic here
		// would indicate a bug in tarjanVisit, not a caller error.
		panic(fmt.Sprintf("dgraph: condensation is not acyclic: %v", err))
	}

	return dag
}
