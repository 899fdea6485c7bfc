// Package concept defines the Concept type: a pair (extent, intent) with
// optional presence flags for each side, modeled as a tagged variant over
// {extent-only, intent-only, both} rather than a class hierarchy with
// null fields.
//
// O is the observation element type (extent domain), A the attribute
// element type (intent domain, conventionally called "A" in the Ganter/
// Wille literature, whose pair notation (A, B) takes A as the
// attribute/intent side and B as the observation/extent side).
package concept

import "github.com/go-fca/lattice/order"

// Concept is a pair (extent, intent) with presence flags. The zero value
// has neither side present and is not a valid concept; build one with
// Full, IntentOnly, or ExtentOnly.
type Concept[O any, A any] struct {
	extent    *order.Set[O]
	intent    *order.Set[A]
	hasExtent bool
	hasIntent bool
}

// Full returns a concept with both sides populated.
func Full[O, A any](extent *order.Set[O], intent *order.Set[A]) Concept[O, A] {
	return Concept[O, A]{extent: extent, intent: intent, hasExtent: true, hasIntent: true}
}

// IntentOnly returns a concept whose extent has not yet been computed.
// Identity and ordering for such a concept derive from intent.
func IntentOnly[O, A any](intent *order.Set[A]) Concept[O, A] {
	return Concept[O, A]{intent: intent, hasIntent: true}
}

// ExtentOnly returns a concept whose intent has not yet been computed.
func ExtentOnly[O, A any](extent *order.Set[O]) Concept[O, A] {
	return Concept[O, A]{extent: extent, hasExtent: true}
}

// Intent returns the attribute side and whether it is present.
func (c Concept[O, A]) Intent() (*order.Set[A], bool) {
	return c.intent, c.hasIntent
}

// Extent returns the observation side and whether it is present.
func (c Concept[O, A]) Extent() (*order.Set[O], bool) {
	return c.extent, c.hasExtent
}

// IsFull reports whether both sides are present (a full concept, meaning
// it satisfies B = extent(A) ∧ A = intent(B)). This method only checks
// presence, not the closure equations themselves — callers that build a
// Concept are responsible for the equations holding.
func (c Concept[O, A]) IsFull() bool {
	return c.hasExtent && c.hasIntent
}

// WithExtent returns a copy of c with its extent set, used when completing
// a concept lattice to turn an intent-only concept into a full one.
func (c Concept[O, A]) WithExtent(extent *order.Set[O]) Concept[O, A] {
	c.extent = extent
	c.hasExtent = true

	return c
}

// WithIntent returns a copy of c with its intent set.
func (c Concept[O, A]) WithIntent(intent *order.Set[A]) Concept[O, A] {
	c.intent = intent
	c.hasIntent = true

	return c
}

// Equal reports identity: compared by intent if both concepts have an
// intent, else by extent if both have one. Two concepts
// with mismatched presence (one intent-only, the other extent-only) are
// never equal — there is no shared side to compare.
func (c Concept[O, A]) Equal(other Concept[O, A]) bool {
	if c.hasIntent && other.hasIntent {
		return c.intent.Equal(other.intent)
	}
	if c.hasExtent && other.hasExtent {
		return c.extent.Equal(other.extent)
	}

	return false
}
