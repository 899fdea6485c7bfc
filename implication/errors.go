// errors.go — sentinel errors for the implication package.
package implication

// Rule declaration never fails: AddRule silently ignores an exact
// duplicate (premise, conclusion) pair rather than erroring, and the
// normal-form predicates (Unary, Binary, Proper, Reduced, Direct) are
// advisory checks, not enforced invariants — a system failing one is
// still a valid, usable ImplicationalSystem. There are therefore no
// sentinel errors in this package.
