// File: dot.go
// Role: standard Graphviz DOT output for any DGraph-shaped structure:
// `digraph G { Graph [rankdir=BT]; <id> [label="…"]; <src>-><tgt>
// [label="…"]; }`, quotes inside labels escaped.
package serialize

import (
	"fmt"
	"io"

	"github.com/go-fca/lattice/dgraph"
)

// NodeLabeler renders a node's label text (pre-escaping).
type NodeLabeler[N any] func(id string, content N) string

// EdgeLabeler renders an edge's label text (pre-escaping).
type EdgeLabeler[E comparable] func(e dgraph.Edge[E]) string

// WriteDOT renders g as Graphviz DOT, nodes and edges in g's
// deterministic (sorted) iteration order.
func WriteDOT[N any, E comparable](w io.Writer, g *dgraph.Graph[N, E], nodeLabel NodeLabeler[N], edgeLabel EdgeLabeler[E]) error {
	if _, err := io.WriteString(w, "digraph G {\n\tGraph [rankdir=BT];\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	for _, id := range g.Nodes() {
		content, _ := g.Content(id)
		label := ""
		if nodeLabel != nil {
			label = nodeLabel(id, content)
		}
		if _, err := fmt.Fprintf(w, "\t%q [label=%q];\n", id, label); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	for _, e := range g.Edges() {
		label := ""
		if edgeLabel != nil {
			label = edgeLabel(e)
		}
		if _, err := fmt.Fprintf(w, "\t%q->%q [label=%q];\n", e.From, e.To, label); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return nil
}
