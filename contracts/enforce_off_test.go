//go:build unit && contracts_off

package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffBuild_LevelConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LevelOff, BuildLevel(Level))
	assert.False(t, Enabled)
	assert.False(t, AuditEnabled)
}

func TestAllChecks_NoOpInOffBuild(t *testing.T) {
	// Not parallel - swaps package seams.
	exited, _, output := captureViolation(t, func() {
		Assert(false)
		Expects(false, "never reported")
		Ensures(false)
		AssertAudit(func() bool { return false })
		ExpectsAudit(func() bool { return false })
		EnsuresAudit(func() bool { return false })
		ConfirmAudit(func() bool { return false })
		ExpectsAxiom(func() bool { return false })
		EnsuresAxiom(func() bool { return false })
	})

	assert.False(t, exited)
	assert.Empty(t, output)
}

func TestAuditPredicates_NeverInvokedInOffBuild(t *testing.T) {
	t.Parallel()

	invoked := false
	pred := func() bool {
		invoked = true
		return false
	}

	AssertAudit(pred)
	ExpectsAudit(pred)
	EnsuresAudit(pred)
	ConfirmAudit(pred)
	ExpectsAxiom(pred)
	EnsuresAxiom(pred)

	assert.False(t, invoked)
}
