// File: reduce.go
// Role: attribute/observation reduction, built on closure.ReducibleElements
// applied to this context (for attributes) or its reverse (for
// observations — observation reduction is just attribute reduction on the
// reversed context).
package fcontext

import "github.com/go-fca/lattice/closure"

// ReduceAttributes finds attributes equivalent under closure via
// closure.ReducibleElements and physically removes them, returning the
// map of removed attribute ID to its equivalence class.
func (c *Context[O, A]) ReduceAttributes() map[string]closure.Reduction[A] {
	reducible := closure.ReducibleElements[A](c)

	byID := make(map[string]A, len(c.arrA))
	for _, a := range c.arrA {
		byID[c.idA(a)] = a
	}

	for id := range reducible {
		if a, ok := byID[id]; ok {
			c.RemoveAttribute(a)
		}
	}

	return reducible
}

// ReduceObservations is attribute reduction performed on the reverse
// context, then mirrored back as observation removals on c.
func (c *Context[O, A]) ReduceObservations() map[string]closure.Reduction[O] {
	rev := c.Reversed()
	reducible := rev.ReduceAttributes()

	byID := make(map[string]O, len(c.arrO))
	for _, o := range c.arrO {
		byID[c.idO(o)] = o
	}

	for id := range reducible {
		if o, ok := byID[id]; ok {
			c.RemoveObservation(o)
		}
	}

	return reducible
}

// ReduceResult bundles both reduction passes for Reduce.
type ReduceResult[O comparable, A comparable] struct {
	Attributes   map[string]closure.Reduction[A]
	Observations map[string]closure.Reduction[O]
}

// Reduce performs attribute reduction followed by observation
// reduction on the already-reduced context.
func (c *Context[O, A]) Reduce() ReduceResult[O, A] {
	attrs := c.ReduceAttributes()
	obs := c.ReduceObservations()

	return ReduceResult[O, A]{Attributes: attrs, Observations: obs}
}
