// File: reverse.go
// Role: swap observations and attributes.
//
// An in-place O(1) pointer swap isn't expressible here: Go's generics fix
// a value's type parameters for its lifetime, so a *Context[O, A] cannot
// become a *Context[A, O] without a new value. Reversed builds that new
// value from the existing relation, transposed, and derives its bitsets
// with rebuild(), the closest equivalent this type system allows.
package fcontext

// Reversed returns an independent context with observations and
// attributes swapped: what was intent/extent becomes extent/intent.
func (c *Context[O, A]) Reversed() *Context[A, O] {
	r := &Context[A, O]{
		lessO: c.lessA,
		lessA: c.lessO,
		idO:   c.idA,
		idA:   c.idO,
		obs:   make(map[A]struct{}, len(c.attr)),
		attr:  make(map[O]struct{}, len(c.obs)),
		rel:   make(map[A]map[O]struct{}, len(c.attr)),
	}
	for a := range c.attr {
		r.obs[a] = struct{}{}
		r.rel[a] = make(map[O]struct{})
	}
	for o := range c.obs {
		r.attr[o] = struct{}{}
	}
	for o, attrs := range c.rel {
		for a := range attrs {
			r.rel[a][o] = struct{}{}
		}
	}
	r.rebuild()

	return r
}
