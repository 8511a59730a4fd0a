package contracts

import (
	constant "github.com/rianquinn/bsl-sub002/contracts/constants"
)

// Code is the numeric diagnostic code reported with a violation.
// Every kind carries a default code; callers may override it by passing a
// Code as the first msgAndArgs value.
type Code uint32

// Kind identifies the contract category and tier of a check.
//
// There is deliberately no default-tier invariant kind, and no axiom kind:
// axiom forms never enter the engine at all.
type Kind uint8

// Contract kinds, default tier first.
const (
	// KindAssertion is a default-tier generic assertion.
	KindAssertion Kind = iota
	// KindPrecondition is a default-tier precondition.
	KindPrecondition
	// KindPostcondition is a default-tier postcondition.
	KindPostcondition
	// KindAssertionAudit is an audit-tier generic assertion.
	KindAssertionAudit
	// KindPreconditionAudit is an audit-tier precondition.
	KindPreconditionAudit
	// KindPostconditionAudit is an audit-tier postcondition.
	KindPostconditionAudit
	// KindInvariantAudit is an audit-tier invariant.
	KindInvariantAudit
)

// Tier returns the build level a check of this kind requires.
func (k Kind) Tier() BuildLevel {
	switch k {
	case KindAssertion, KindPrecondition, KindPostcondition:
		return LevelDefault
	default:
		return LevelAudit
	}
}

// Code returns the kind's default diagnostic code.
func (k Kind) Code() Code {
	switch k {
	case KindAssertion:
		return constant.CodeAssertion
	case KindPrecondition:
		return constant.CodePrecondition
	case KindPostcondition:
		return constant.CodePostcondition
	case KindAssertionAudit:
		return constant.CodeAssertionAudit
	case KindPreconditionAudit:
		return constant.CodePreconditionAudit
	case KindPostconditionAudit:
		return constant.CodePostconditionAudit
	case KindInvariantAudit:
		return constant.CodeInvariantAudit
	default:
		return 0
	}
}

// Label returns the human-readable kind phrase used in diagnostics,
// e.g. "default precondition" or "audit invariant".
func (k Kind) Label() string {
	switch k {
	case KindAssertion:
		return "default assertion"
	case KindPrecondition:
		return "default precondition"
	case KindPostcondition:
		return "default postcondition"
	case KindAssertionAudit:
		return "audit assertion"
	case KindPreconditionAudit:
		return "audit precondition"
	case KindPostconditionAudit:
		return "audit postcondition"
	case KindInvariantAudit:
		return "audit invariant"
	default:
		return "unknown contract"
	}
}

// String returns the kind label.
func (k Kind) String() string {
	return k.Label()
}
