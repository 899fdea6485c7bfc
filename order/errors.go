package order

// This package has no fallible operations: every method is total over its
// inputs (a nil *Set is never dereferenced because callers always obtain
// sets via NewSet/NewSetFrom/Clone). There are therefore no sentinel
// errors here — see dgraph/errors.go and serialize/errors.go for the
// packages that do define sentinel errors.
