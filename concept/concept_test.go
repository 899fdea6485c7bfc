package concept_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-fca/lattice/concept"
	"github.com/go-fca/lattice/order"
)

func strLess(a, b string) bool { return a < b }

func TestConcept_Presence(t *testing.T) {
	intent := order.NewSetFrom(strLess, "a", "b")
	c := concept.IntentOnly[string](intent)
	assert.False(t, c.IsFull())

	_, hasExtent := c.Extent()
	assert.False(t, hasExtent)

	gotIntent, hasIntent := c.Intent()
	assert.True(t, hasIntent)
	assert.True(t, gotIntent.Equal(intent))
}

func TestConcept_WithExtentCompletesConcept(t *testing.T) {
	intent := order.NewSetFrom(strLess, "a")
	extent := order.NewSetFrom(strLess, "1", "2")

	c := concept.IntentOnly[string](intent)
	full := c.WithExtent(extent)
	assert.True(t, full.IsFull())

	gotExtent, ok := full.Extent()
	assert.True(t, ok)
	assert.True(t, gotExtent.Equal(extent))
}

func TestConcept_EqualByIntent(t *testing.T) {
	a := concept.Full(order.NewSetFrom(strLess, "1"), order.NewSetFrom(strLess, "x", "y"))
	b := concept.Full(order.NewSetFrom(strLess, "2"), order.NewSetFrom(strLess, "x", "y"))
	c := concept.Full(order.NewSetFrom(strLess, "1"), order.NewSetFrom(strLess, "x"))

	assert.True(t, a.Equal(b), "same intent => equal regardless of extent")
	assert.False(t, a.Equal(c))
}

func TestConcept_MismatchedPresenceNeverEqual(t *testing.T) {
	a := concept.IntentOnly[string](order.NewSetFrom(strLess, "x"))
	b := concept.ExtentOnly[string, string](order.NewSetFrom(strLess, "1"))

	assert.False(t, a.Equal(b))
}
