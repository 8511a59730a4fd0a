//go:build contracts_audit && !contracts_off

package contracts

// Audit-tier checks take a predicate instead of an eager boolean because
// audit conditions are expected to be expensive (deep structural walks,
// O(n) scans). The predicate is only invoked in audit builds; everywhere
// else these functions are empty and the condition is never evaluated.
// A nil predicate is ignored.

// AssertAudit checks an audit-tier generic assertion. If pred returns
// false, the process emits a fatal diagnostic and aborts.
func AssertAudit(pred func() bool, msgAndArgs ...any) {
	if pred == nil {
		return
	}

	check(KindAssertionAudit, pred(), msgAndArgs)
}

// ExpectsAudit checks an audit-tier precondition. If pred returns false,
// the process emits a fatal diagnostic and aborts.
func ExpectsAudit(pred func() bool, msgAndArgs ...any) {
	if pred == nil {
		return
	}

	check(KindPreconditionAudit, pred(), msgAndArgs)
}

// EnsuresAudit checks an audit-tier postcondition. If pred returns false,
// the process emits a fatal diagnostic and aborts.
func EnsuresAudit(pred func() bool, msgAndArgs ...any) {
	if pred == nil {
		return
	}

	check(KindPostconditionAudit, pred(), msgAndArgs)
}

// ConfirmAudit checks an audit-tier invariant. If pred returns false, the
// process emits a fatal diagnostic and aborts.
//
// There is no default-tier invariant form.
func ConfirmAudit(pred func() bool, msgAndArgs ...any) {
	if pred == nil {
		return
	}

	check(KindInvariantAudit, pred(), msgAndArgs)
}
