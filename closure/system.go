// Package closure declares the abstract ClosureSystem contract and the
// algorithms defined purely in terms of it: Next-Closure lectic
// enumeration, the precedence graph, and reducible-element detection.
//
// This is modeled as a Go interface plus free-standing generic functions,
// not as an abstract base class: System[E] supplies Elements/Closure/Less/
// ID, and NextClosure, AllClosures, PrecedenceGraph, and ReducibleElements
// are ordinary functions parameterized over any System[E].
package closure

import "github.com/go-fca/lattice/order"

// System is a closure system: a ground set of elements plus a closure
// operator. Implementations (fcontext.Context, implication.System) must
// keep Closure extensive (S ⊆ cl(S)), monotone (S ⊆ T ⇒ cl(S) ⊆ cl(T)),
// and idempotent (cl(cl(S)) = cl(S)) — this package assumes, and does not
// re-verify, those three laws.
type System[E any] interface {
	// Elements returns the full ground set, ordered by Less.
	Elements() *order.Set[E]

	// Closure computes cl(s). s is never mutated by the caller after
	// being passed in; implementations may assume exclusive ownership
	// of the returned set (it is never aliased back to the caller's s).
	Closure(s *order.Set[E]) *order.Set[E]

	// Less is the total order elements are compared and enumerated
	// under; it must be stable for the system's lifetime.
	Less() order.Less[E]

	// ID returns a stable, unique string identifier for e, used to key
	// elements in string-keyed structures (dgraph nodes, map lookups,
	// serializer output) without requiring E itself to be comparable or
	// hashable.
	ID(e E) string
}
