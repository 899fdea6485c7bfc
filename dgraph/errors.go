// errors.go — sentinel errors for the dgraph package.
//
// Error policy (matches the rest of this module): only package-level
// sentinels are exposed; callers branch with errors.Is; sentinels are never
// wrapped with a formatted string at their definition site, only at call
// sites via fmt.Errorf("%w: ...", Err...).
//
// AddEdge reports a missing endpoint as ErrNodeNotFound; RemoveEdge does
// not check endpoints and reports any absent edge, including one with a
// missing endpoint, as ErrEdgeNotFound. ErrNotAcyclic comes only from
// AsDAG.
package dgraph

import "errors"

var (
	// ErrNodeNotFound indicates a reference to a node ID absent from the graph.
	ErrNodeNotFound = errors.New("dgraph: node not found")

	// ErrEdgeNotFound indicates a reference to an edge that does not exist.
	ErrEdgeNotFound = errors.New("dgraph: edge not found")

	// ErrNodeExists indicates AddNode was called with an ID already present.
	ErrNodeExists = errors.New("dgraph: node already exists")

	// ErrNotAcyclic indicates AsDAG was asked to wrap a graph containing
	// a cycle, so the DAG-only operations (transitive reduction,
	// topological sort, filter, ideal) are unavailable for it. This is a
	// programmer error, surfaced rather than silently worked around.
	ErrNotAcyclic = errors.New("dgraph: graph is not acyclic")
)
