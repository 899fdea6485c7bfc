// File: normalforms.go
// Role: the canonical-form predicates — advisory checks, never enforced
// by AddRule or Closure.
package implication

import (
	"github.com/go-fca/lattice/closure"
	"github.com/go-fca/lattice/order"
)

// IsUnary reports whether every rule's conclusion is a singleton.
func (s *System[E]) IsUnary() bool {
	for _, r := range s.rules {
		if r.Conclusion.Len() > 1 {
			return false
		}
	}

	return true
}

// IsBinary reports whether every rule has premise size <= 1 and
// conclusion size <= 1.
func (s *System[E]) IsBinary() bool {
	for _, r := range s.rules {
		if r.Premise.Len() > 1 || r.Conclusion.Len() > 1 {
			return false
		}
	}

	return true
}

// IsProper reports whether no rule is redundant: removing any single
// rule and re-deriving its premise's closure under the remaining rules
// would fail to reproduce its conclusion.
func (s *System[E]) IsProper() bool {
	for i := range s.rules {
		without := &System[E]{less: s.less, id: s.id, elements: s.elements}
		without.rules = make([]Rule[E], 0, len(s.rules)-1)
		for j, r := range s.rules {
			if j != i {
				without.rules = append(without.rules, r)
			}
		}

		derived := without.Closure(s.rules[i].Premise)
		if s.rules[i].Conclusion.SubsetOf(derived) {
			return false
		}
	}

	return true
}

// IsReduced reports whether no element is equivalent to another (or to
// a set of others) under closure — i.e. closure.ReducibleElements finds
// nothing to collapse.
func (s *System[E]) IsReduced() bool {
	return len(closure.ReducibleElements[E](s)) == 0
}

// IsDirect reports whether a single firing pass over every rule,
// applied once to each singleton {e}, already reaches cl({e}) — no
// element needs a second round to saturate.
func (s *System[E]) IsDirect() bool {
	for e := range s.elements {
		singleton := order.NewSetFrom(s.less, e)
		if !s.onePass(singleton).Equal(s.Closure(singleton)) {
			return false
		}
	}

	return true
}

// onePass fires every rule whose premise is satisfied by x exactly
// once, without iterating to a fixpoint.
func (s *System[E]) onePass(x *order.Set[E]) *order.Set[E] {
	current := x.Clone()
	for _, r := range s.rules {
		if r.Premise.SubsetOf(x) {
			for _, c := range r.Conclusion.Elements() {
				current.Add(c)
			}
		}
	}

	return current
}
