// errors.go — sentinel errors for the closure package.
package closure

// This package's algorithms (NextClosure, AllClosures, PrecedenceGraph,
// ReducibleElements) are total over any conforming System[E]: a
// System[E] that violates extensiveness/monotonicity/idempotence is a
// programmer error in the implementation, not a condition this package
// can detect and report without re-verifying the laws on every call
// (which would defeat the point of bitset/saturation acceleration in
// fcontext and implication). There are therefore no sentinel errors here.
