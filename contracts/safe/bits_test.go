//go:build unit

package safe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value uint64
		width uint
		want  uint64
	}{
		{name: "width zero clears everything", value: 0xFF, width: 0, want: 0},
		{name: "low nibble", value: 0xAB, width: 4, want: 0xB},
		{name: "page offset", value: 0x1234, width: 12, want: 0x234},
		{name: "width equals bit size", value: math.MaxUint64, width: 64, want: math.MaxUint64},
		{name: "width beyond bit size", value: math.MaxUint64, width: 100, want: math.MaxUint64},
		{name: "zero value", value: 0, width: 17, want: 0},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, LowerBits(tt.value, tt.width))
		})
	}
}

func TestLowerBits_NarrowTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(0x0F), LowerBits(uint8(0xFF), 4))
	assert.Equal(t, uint8(0xFF), LowerBits(uint8(0xFF), 8))
	assert.Equal(t, uint16(0x00FF), LowerBits(uint16(0xABFF), 8))
	assert.Equal(t, uint32(0x3), LowerBits(uint32(0xFFFFFFFF), 2))
}

func TestBitWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(8), bitWidth[uint8]())
	assert.Equal(t, uint(16), bitWidth[uint16]())
	assert.Equal(t, uint(32), bitWidth[uint32]())
	assert.Equal(t, uint(64), bitWidth[uint64]())
}
