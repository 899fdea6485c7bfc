// File: rules.go
// Role: rule declaration; rules are never duplicated.
package implication

import "github.com/go-fca/lattice/order"

// AddRule declares premise -> conclusion, auto-registering every
// element either side mentions into the ground set. Returns false if
// an identical (premise, conclusion) rule is already present.
func (s *System[E]) AddRule(premise, conclusion *order.Set[E]) bool {
	for _, r := range s.rules {
		if r.Premise.Equal(premise) && r.Conclusion.Equal(conclusion) {
			return false
		}
	}

	for _, e := range premise.Elements() {
		s.elements[e] = struct{}{}
	}
	for _, e := range conclusion.Elements() {
		s.elements[e] = struct{}{}
	}

	s.rules = append(s.rules, Rule[E]{Premise: premise.Clone(), Conclusion: conclusion.Clone()})

	return true
}
