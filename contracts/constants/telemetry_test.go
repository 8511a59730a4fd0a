//go:build unit

package constant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMetricLabel_ShortLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", SanitizeMetricLabel("short"))
}

func TestSanitizeMetricLabel_ExactMaxLength(t *testing.T) {
	t.Parallel()

	val := strings.Repeat("x", MaxMetricLabelLength)
	assert.Equal(t, val, SanitizeMetricLabel(val))
}

func TestSanitizeMetricLabel_TruncatesLongLabel(t *testing.T) {
	t.Parallel()

	val := strings.Repeat("y", MaxMetricLabelLength+20)
	result := SanitizeMetricLabel(val)
	assert.Len(t, result, MaxMetricLabelLength)
	assert.Equal(t, strings.Repeat("y", MaxMetricLabelLength), result)
}
