// Package lattice builds concept lattices from a closure system: the
// full transitively-closed order (Complete) and the Hasse diagram
// (Diagram, a Bordat-style worklist construction that never materializes
// the transitive shortcuts in the first place).
//
// Logging uses go.uber.org/zap, the same idiom the rest of the domain
// stack shares: a *zap.Logger threaded in via WithLogger, defaulting to
// zap.NewNop() so the core stays silent unless a caller opts in.
package lattice
