package contracts

// Axiom forms record design assumptions in code without any runtime cost.
// They are identical at every build level, including audit: the predicate
// is accepted but never invoked, and no violation can ever be reported.

// ExpectsAxiom documents a precondition that is assumed, never checked.
func ExpectsAxiom(_ func() bool, _ ...any) {}

// EnsuresAxiom documents a postcondition that is assumed, never checked.
func EnsuresAxiom(_ func() bool, _ ...any) {}
