package contracts

import (
	"fmt"
	"strings"
)

// BuildLevel selects which contract tiers a build enforces.
//
// Levels are totally ordered: LevelOff < LevelDefault < LevelAudit. A tier
// is enforced when the build level is at or above it, so an audit build
// also enforces every default-tier check.
type BuildLevel uint8

// Build level constants, from least to most enforcement.
const (
	// LevelOff disables all contract checking.
	LevelOff BuildLevel = iota
	// LevelDefault enforces default-tier checks only.
	LevelDefault
	// LevelAudit enforces default-tier and audit-tier checks.
	LevelAudit
)

// Enables reports whether a check requiring the given tier is enforced
// at this build level.
func (l BuildLevel) Enables(tier BuildLevel) bool {
	return tier <= l
}

// String returns the string representation of a build level.
func (l BuildLevel) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelDefault:
		return "default"
	case LevelAudit:
		return "audit"
	default:
		return "unknown"
	}
}

// ParseBuildLevel takes a string level and returns a BuildLevel constant.
func ParseBuildLevel(lvl string) (BuildLevel, error) {
	switch strings.ToLower(lvl) {
	case "off":
		return LevelOff, nil
	case "default":
		return LevelDefault, nil
	case "audit":
		return LevelAudit, nil
	}

	var l BuildLevel

	return l, fmt.Errorf("not a valid BuildLevel: %q", lvl)
}
