//go:build !contracts_off

package contracts

// Assert checks a default-tier generic assertion. If cond is false, the
// process emits a fatal diagnostic and aborts.
//
// msgAndArgs is optional: a leading Code overrides the kind's diagnostic
// code, a leading string with further arguments is a Printf format.
//
// Example:
//
//	contracts.Assert(len(buf) >= header, "buffer holds header, len=%d", len(buf))
func Assert(cond bool, msgAndArgs ...any) {
	check(KindAssertion, cond, msgAndArgs)
}

// Expects checks a default-tier precondition. If cond is false, the process
// emits a fatal diagnostic and aborts.
//
// Example:
//
//	contracts.Expects(index < len(items), "index in range")
func Expects(cond bool, msgAndArgs ...any) {
	check(KindPrecondition, cond, msgAndArgs)
}

// Ensures checks a default-tier postcondition. If cond is false, the
// process emits a fatal diagnostic and aborts.
//
// Example:
//
//	contracts.Ensures(result >= 0, "result is non-negative")
func Ensures(cond bool, msgAndArgs ...any) {
	check(KindPostcondition, cond, msgAndArgs)
}
