// File: system.go
// Role: the (E, R) tuple and its saturation-based closure operator.
package implication

import "github.com/go-fca/lattice/order"

// Rule is a single premise -> conclusion production.
type Rule[E any] struct {
	Premise    *order.Set[E]
	Conclusion *order.Set[E]
}

// System is an implicational closure system (E, R).
type System[E comparable] struct {
	less order.Less[E]
	id   func(E) string

	elements map[E]struct{}
	rules    []Rule[E]
}

// New constructs an empty implicational system.
func New[E comparable](less order.Less[E], id func(E) string) *System[E] {
	return &System[E]{
		less:     less,
		id:       id,
		elements: make(map[E]struct{}),
	}
}

// AddElement declares e in the ground set, independent of any rule
// referencing it. Returns false if e was already declared.
func (s *System[E]) AddElement(e E) bool {
	if _, exists := s.elements[e]; exists {
		return false
	}
	s.elements[e] = struct{}{}

	return true
}

// Elements returns the full ground set, ascending.
func (s *System[E]) Elements() *order.Set[E] {
	elems := make([]E, 0, len(s.elements))
	for e := range s.elements {
		elems = append(elems, e)
	}

	return order.NewSetFrom(s.less, elems...)
}

// Less returns the total order elements are enumerated under.
func (s *System[E]) Less() order.Less[E] {
	return s.less
}

// ID returns the stable string identifier for e.
func (s *System[E]) ID(e E) string {
	return s.id(e)
}

// Rules returns the declared rules in declaration order.
func (s *System[E]) Rules() []Rule[E] {
	out := make([]Rule[E], len(s.rules))
	copy(out, s.rules)

	return out
}

// Closure saturates S under rule application: while some rule's
// premise is a subset of the current set, its conclusion is unioned
// in; repeats until a full pass adds nothing.
//
// Complexity: O(|R|·|S|·|E|) worst case; a counter-based linear variant
// is a valid optimization this implementation does not pursue, favoring
// the clarity of the naive saturation loop.
func (s *System[E]) Closure(x *order.Set[E]) *order.Set[E] {
	current := x.Clone()

	for {
		changed := false
		for _, r := range s.rules {
			if !r.Premise.SubsetOf(current) {
				continue
			}
			before := current.Len()
			for _, c := range r.Conclusion.Elements() {
				current.Add(c)
			}
			if current.Len() != before {
				changed = true
			}
		}
		if !changed {
			return current
		}
	}
}
