// Package contracts provides compile-time-configurable contract checking:
// preconditions, postconditions, invariants, and generic assertions whose
// enforcement is selected by a build tag rather than a runtime flag.
//
// Three build levels exist. Without tags the library enforces the Default
// tier; the contracts_audit tag additionally enforces the Audit tier; the
// contracts_off tag disables enforcement entirely (and wins if both tags
// are set). Disabled checks compile to no-ops, so a deployment that does
// not want a tier pays nothing for it.
//
// Default-tier checks take an eager boolean:
//
//	contracts.Expects(index < len(items), "index in range")
//
// For an expensive default-tier condition, fence the evaluation so off
// builds can eliminate it entirely:
//
//	if contracts.Enabled {
//		contracts.Ensures(tree.isBalanced(), "tree stays balanced")
//	}
//
// Audit-tier checks take a predicate that is only ever invoked in audit
// builds, so deep structural checks are free everywhere else:
//
//	contracts.ConfirmAudit(func() bool { return ledger.sumsToZero() })
//
// A failed check writes one fatal diagnostic line to stderr and aborts the
// process. Violations cannot be caught or recovered: contracts encode
// programmer errors, not runtime conditions.
//
// Axiom forms (ExpectsAxiom, EnsuresAxiom) record design assumptions in
// code and never evaluate or enforce their predicate at any build level.
package contracts
