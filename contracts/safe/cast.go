package safe

import (
	"golang.org/x/exp/constraints"

	"github.com/rianquinn/bsl-sub002/contracts"
)

// NarrowCast converts value to the (usually narrower) integer type T.
// A conversion that alters the value or flips its sign is a fatal
// assertion violation: narrowing is only legal when no information is lost.
//
// Example:
//
//	port := safe.NarrowCast[uint16](portNumber)
func NarrowCast[T, F constraints.Integer](value F) T {
	converted := T(value)

	contracts.Assert(F(converted) == value, "narrowing conversion altered the value %v", value)
	contracts.Assert((converted < 0) == (value < 0), "narrowing conversion changed the sign of %v", value)

	return converted
}
