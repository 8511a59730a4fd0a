//go:build contracts_off

package contracts

// Default-tier checks compile to no-ops under the contracts_off tag.
//
// The boolean argument is still evaluated at the call site; fence expensive
// conditions with `if contracts.Enabled { ... }` so off builds can remove
// the evaluation too.

// Assert is a no-op in off builds.
func Assert(_ bool, _ ...any) {}

// Expects is a no-op in off builds.
func Expects(_ bool, _ ...any) {}

// Ensures is a no-op in off builds.
func Ensures(_ bool, _ ...any) {}
