//go:build !contracts_off && !contracts_audit

package contracts

// Level is the build level this binary was compiled with.
const Level = LevelDefault

// Enabled reports at compile time whether default-tier checks are enforced.
// Guard expensive eager conditions with `if contracts.Enabled { ... }` so
// off builds can eliminate the evaluation along with the check.
const Enabled = true

// AuditEnabled reports at compile time whether audit-tier checks are enforced.
const AuditEnabled = false
