// File: context.go
// Role: the Context type, its positional arrays, and the eager bitset
// rebuild that keeps them coherent with the raw relation after any
// mutation.
package fcontext

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/go-fca/lattice/order"
)

// Context is the tuple (O, A, I ⊆ O × A). O and A are independently
// comparable element types (not necessarily the same type), each with
// a total order and a stable string identifier supplied at
// construction — mirroring closure.System[E]'s ID contract so a
// Context can key its elements into string-based structures (dgraph
// nodes, serializer output) without requiring O or A to be hashable by
// their own zero-value semantics.
type Context[O comparable, A comparable] struct {
	lessO order.Less[O]
	lessA order.Less[A]
	idO   func(O) string
	idA   func(A) string

	obs  map[O]struct{}
	attr map[A]struct{}
	rel  map[O]map[A]struct{}

	// Positional arrays and bitset mirrors, rebuilt eagerly by rebuild()
	// after every mutation. arrO[i]/arrA[j] give the element at bitset
	// position i/j; posO/posA invert that mapping.
	arrO []O
	arrA []A
	posO map[O]int
	posA map[A]int

	bsIntent map[O]*roaring.Bitmap // observation -> attribute positions
	bsExtent map[A]*roaring.Bitmap // attribute -> observation positions
}

// New constructs an empty context. lessO/lessA define the total order
// Next-Closure enumerates under; idO/idA must be stable and injective
// for the context's lifetime.
func New[O comparable, A comparable](lessO order.Less[O], lessA order.Less[A], idO func(O) string, idA func(A) string) *Context[O, A] {
	c := &Context[O, A]{
		lessO: lessO,
		lessA: lessA,
		idO:   idO,
		idA:   idA,
		obs:   make(map[O]struct{}),
		attr:  make(map[A]struct{}),
		rel:   make(map[O]map[A]struct{}),
	}
	c.rebuild()

	return c
}

// rebuild recomputes arrO, arrA, posO, posA, bsIntent, and bsExtent
// from obs, attr, and rel. Called after every mutation; O(|O|·|A|)
// worst case, matching the source's eager-rebuild contract.
func (c *Context[O, A]) rebuild() {
	c.arrO = sortedKeysO(c.obs, c.lessO)
	c.arrA = sortedKeysA(c.attr, c.lessA)

	c.posO = make(map[O]int, len(c.arrO))
	for i, o := range c.arrO {
		c.posO[o] = i
	}
	c.posA = make(map[A]int, len(c.arrA))
	for j, a := range c.arrA {
		c.posA[a] = j
	}

	c.bsIntent = make(map[O]*roaring.Bitmap, len(c.arrO))
	c.bsExtent = make(map[A]*roaring.Bitmap, len(c.arrA))
	for _, a := range c.arrA {
		c.bsExtent[a] = roaring.New()
	}

	for i, o := range c.arrO {
		bm := roaring.New()
		for a := range c.rel[o] {
			j, declared := c.posA[a]
			if !declared {
				continue
			}
			bm.Add(uint32(j))
			c.bsExtent[a].Add(uint32(i))
		}
		c.bsIntent[o] = bm
	}
}

func sortedKeysO[O comparable](m map[O]struct{}, less order.Less[O]) []O {
	out := make([]O, 0, len(m))
	for o := range m {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

func sortedKeysA[A comparable](m map[A]struct{}, less order.Less[A]) []A {
	out := make([]A, 0, len(m))
	for a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

// Observations returns the declared observations, ascending.
func (c *Context[O, A]) Observations() *order.Set[O] {
	return order.NewSetFrom(c.lessO, c.arrO...)
}

// Attributes returns the declared attributes, ascending.
func (c *Context[O, A]) Attributes() *order.Set[A] {
	return order.NewSetFrom(c.lessA, c.arrA...)
}
