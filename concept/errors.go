package concept

// No sentinel errors here: every Concept constructor and accessor is
// total over its inputs. See order/errors.go for the same note on
// order.Set.
