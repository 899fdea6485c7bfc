// File: queries.go
// Role: intent/extent queries and the closure operator, bitset-backed.
// Unknown observations or attributes yield an empty result rather than
// an error.
package fcontext

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/go-fca/lattice/order"
)

// Intent returns {a | (o,a) ∈ I}. Empty if o is not declared.
func (c *Context[O, A]) Intent(o O) *order.Set[A] {
	bm, ok := c.bsIntent[o]
	if !ok {
		return order.NewSet(c.lessA)
	}

	return c.attrsAt(bm)
}

// Extent returns {o | (o,a) ∈ I}. Empty if a is not declared.
func (c *Context[O, A]) Extent(a A) *order.Set[O] {
	bm, ok := c.bsExtent[a]
	if !ok {
		return order.NewSet(c.lessO)
	}

	return c.obsAt(bm)
}

// IntentSize is len(Intent(o)) without materializing the set.
func (c *Context[O, A]) IntentSize(o O) int {
	bm, ok := c.bsIntent[o]
	if !ok {
		return 0
	}

	return int(bm.GetCardinality())
}

// ExtentSize is len(Extent(a)) without materializing the set.
func (c *Context[O, A]) ExtentSize(a A) int {
	bm, ok := c.bsExtent[a]
	if !ok {
		return 0
	}

	return int(bm.GetCardinality())
}

// IntentOfSet computes ⋂_{o ∈ s} intent(o). By convention the
// intersection over the empty family is the full attribute set (the
// universal element), matching the bottom concept's intent in
// completeLattice's cl(∅) computation. Observations not declared in
// this context are ignored.
func (c *Context[O, A]) IntentOfSet(s *order.Set[O]) *order.Set[A] {
	var result *order.Set[A]
	for _, o := range s.Elements() {
		bm, ok := c.bsIntent[o]
		if !ok {
			continue
		}
		if result == nil {
			result = c.attrsAt(bm)

			continue
		}
		result = result.Intersect(c.attrsAt(bm))
	}
	if result == nil {
		return order.NewSetFrom(c.lessA, c.arrA...)
	}

	return result
}

// ExtentOfSet computes ⋂_{a ∈ s} extent(a), with the same empty-family
// convention as IntentOfSet (the full observation set).
func (c *Context[O, A]) ExtentOfSet(s *order.Set[A]) *order.Set[O] {
	var result *order.Set[O]
	for _, a := range s.Elements() {
		bm, ok := c.bsExtent[a]
		if !ok {
			continue
		}
		if result == nil {
			result = c.obsAt(bm)

			continue
		}
		result = result.Intersect(c.obsAt(bm))
	}
	if result == nil {
		return order.NewSetFrom(c.lessO, c.arrO...)
	}

	return result
}

// Closure computes cl(S) = intent(extent(S)) over the attribute side.
func (c *Context[O, A]) Closure(s *order.Set[A]) *order.Set[A] {
	return c.IntentOfSet(c.ExtentOfSet(s))
}

// Elements returns the attribute ground set — Context realizes
// closure.System[A] over attributes (concepts are ordered by intent).
func (c *Context[O, A]) Elements() *order.Set[A] {
	return c.Attributes()
}

// Less returns the attribute ordering.
func (c *Context[O, A]) Less() order.Less[A] {
	return c.lessA
}

// ID returns the stable string identifier for an attribute.
func (c *Context[O, A]) ID(a A) string {
	return c.idA(a)
}

func (c *Context[O, A]) attrsAt(bm *roaring.Bitmap) *order.Set[A] {
	out := order.NewSet(c.lessA)
	for _, pos := range bm.ToArray() {
		out.Add(c.arrA[pos])
	}

	return out
}

func (c *Context[O, A]) obsAt(bm *roaring.Bitmap) *order.Set[O] {
	out := order.NewSet(c.lessO)
	for _, pos := range bm.ToArray() {
		out.Add(c.arrO[pos])
	}

	return out
}
