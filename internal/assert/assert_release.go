//go:build !debug

// Package assert gives the core packages a single, clearly-named place to
// put invariant checks that must vanish from optimized builds -- the
// DEBUG constant lets the compiler dead-code-eliminate a whole guarded
// block, not just this package's own function body.
package assert

// DEBUG is true only in binaries built with -tags debug.
const DEBUG = false

// Assert is a no-op in release builds. Callers must still guard the call
// site with `if assert.DEBUG { ... }`: Go evaluates call arguments even
// when the callee is empty, so an unguarded call still pays for building
// the message string.
func Assert(test bool, msg string, a ...interface{}) {}
