// Package dgraph is the directed-graph substrate underneath the closure
// and lattice packages: node/edge storage, strongly connected components,
// transitive closure and reduction, topological sort, sources/sinks, and
// the filter/ideal down-/up-set queries used by Bordat diagram
// construction and precedence-graph reduction.
//
// Graph[N, E] is a general directed multigraph: N is the per-node content
// payload (e.g. concept.Concept, or an order.Set[string] for an SCC
// condensation node) and E is the per-edge content payload, constrained to
// comparable so parallel edges can be deduplicated by (from, to, content).
// Graph carries two independent locks (muNode for the node catalog,
// muEdge for edges and adjacency): when both are held (AddNode,
// RemoveNode), muNode is always taken first, and read paths stay on RLock
// so a single-writer / many-reader access pattern never contends with
// itself.
//
// DAG[N, E] wraps a Graph that is asserted acyclic and unlocks the
// DAG-only operations (TransitiveReduction, TopologicalSort, Filter,
// Ideal). Construct one with AsDAG, which runs cycle detection and
// returns ErrNotAcyclic — a programmer error, not an ordinary expected
// condition — if the graph has a cycle.
package dgraph
