package safe

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// LowerBits returns value with everything above the low width bits cleared.
// Widths at or beyond the type's bit size return the value unchanged.
//
// Example:
//
//	offset := safe.LowerBits(addr, 12) // page offset
func LowerBits[T constraints.Unsigned](value T, width uint) T {
	if width >= bitWidth[T]() {
		return value
	}

	return value & (T(1)<<width - 1)
}

// bitWidth reports the size of T in bits.
func bitWidth[T constraints.Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}
