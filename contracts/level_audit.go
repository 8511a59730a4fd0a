//go:build contracts_audit && !contracts_off

package contracts

// Level is the build level this binary was compiled with.
const Level = LevelAudit

// Enabled reports at compile time whether default-tier checks are enforced.
const Enabled = true

// AuditEnabled reports at compile time whether audit-tier checks are enforced.
const AuditEnabled = true
