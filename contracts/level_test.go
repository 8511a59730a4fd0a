//go:build unit

package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLevel_Ordering(t *testing.T) {
	t.Parallel()

	require.Less(t, LevelOff, LevelDefault)
	require.Less(t, LevelDefault, LevelAudit)
}

func TestBuildLevel_Enables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level BuildLevel
		tier  BuildLevel
		want  bool
	}{
		{name: "off enables off", level: LevelOff, tier: LevelOff, want: true},
		{name: "off disables default", level: LevelOff, tier: LevelDefault, want: false},
		{name: "off disables audit", level: LevelOff, tier: LevelAudit, want: false},
		{name: "default enables off", level: LevelDefault, tier: LevelOff, want: true},
		{name: "default enables default", level: LevelDefault, tier: LevelDefault, want: true},
		{name: "default disables audit", level: LevelDefault, tier: LevelAudit, want: false},
		{name: "audit enables off", level: LevelAudit, tier: LevelOff, want: true},
		{name: "audit enables default", level: LevelAudit, tier: LevelDefault, want: true},
		{name: "audit enables audit", level: LevelAudit, tier: LevelAudit, want: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.level.Enables(tt.tier))
		})
	}
}

func TestBuildLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "off", LevelOff.String())
	assert.Equal(t, "default", LevelDefault.String())
	assert.Equal(t, "audit", LevelAudit.String())
	assert.Equal(t, "unknown", BuildLevel(42).String())
}

func TestParseBuildLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    BuildLevel
		wantErr bool
	}{
		{name: "off", input: "off", want: LevelOff},
		{name: "default", input: "default", want: LevelDefault},
		{name: "audit", input: "audit", want: LevelAudit},
		{name: "mixed case", input: "Audit", want: LevelAudit},
		{name: "invalid", input: "verbose", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBuildLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
