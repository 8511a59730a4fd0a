//go:build contracts_off

package contracts

// Level is the build level this binary was compiled with.
// contracts_off wins when combined with contracts_audit.
const Level = LevelOff

// Enabled reports at compile time whether default-tier checks are enforced.
const Enabled = false

// AuditEnabled reports at compile time whether audit-tier checks are enforced.
const AuditEnabled = false
