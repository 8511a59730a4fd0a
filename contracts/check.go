package contracts

// check is the single dispatch point for every enforced contract kind.
//
// Tier gating happens at compile time in the public wrappers: a disabled
// tier's wrappers are empty, so a call reaching check is always at an
// enforced tier and carries an already-evaluated condition.
func check(kind Kind, cond bool, msgAndArgs []any) {
	if cond {
		return
	}

	violate(kind, msgAndArgs)
}
