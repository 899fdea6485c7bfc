// errors.go — sentinel errors for the fcontext package.
package fcontext

// Mutations here follow the source's InvalidMutation policy: duplicate
// declarations and removal of absent elements are reported via a
// boolean return, never an error or panic. Unknown observations or
// attributes passed to a query silently yield an empty result. There
// are therefore no sentinel errors in this package.
