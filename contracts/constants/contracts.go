package constant

// FatalPrefix opens every violation diagnostic written to stderr.
const FatalPrefix = "FATAL ERROR"

// ViolationExitStatus is the process exit status used after a contract
// violation. It matches 128+SIGABRT so external crash tooling classifies
// the termination as an abort rather than a clean failure exit.
const ViolationExitStatus = 134

// Diagnostic codes for the default-tier contract kinds.
const (
	// CodeAssertion is the diagnostic code for a failed generic assertion.
	CodeAssertion = 1
	// CodePrecondition is the diagnostic code for a failed precondition.
	CodePrecondition = 2
	// CodePostcondition is the diagnostic code for a failed postcondition.
	CodePostcondition = 3
)

// Diagnostic codes for the audit-tier contract kinds.
const (
	// CodeAssertionAudit is the diagnostic code for a failed audit assertion.
	CodeAssertionAudit = 11
	// CodePreconditionAudit is the diagnostic code for a failed audit precondition.
	CodePreconditionAudit = 12
	// CodePostconditionAudit is the diagnostic code for a failed audit postcondition.
	CodePostconditionAudit = 13
	// CodeInvariantAudit is the diagnostic code for a failed audit invariant.
	CodeInvariantAudit = 14
)
