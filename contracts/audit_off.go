//go:build !contracts_audit || contracts_off

package contracts

// Audit-tier checks compile to no-ops unless the contracts_audit tag is
// set (and contracts_off is not). The predicate is never invoked, so even
// side-effecting or expensive audit conditions cost nothing here.

// AssertAudit is a no-op in non-audit builds; pred is never invoked.
func AssertAudit(_ func() bool, _ ...any) {}

// ExpectsAudit is a no-op in non-audit builds; pred is never invoked.
func ExpectsAudit(_ func() bool, _ ...any) {}

// EnsuresAudit is a no-op in non-audit builds; pred is never invoked.
func EnsuresAudit(_ func() bool, _ ...any) {}

// ConfirmAudit is a no-op in non-audit builds; pred is never invoked.
func ConfirmAudit(_ func() bool, _ ...any) {}
