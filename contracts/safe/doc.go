// Package safe provides checked numeric helpers built on the contract engine.
//
// NarrowCast converts between integer types and treats any conversion that
// would lose information as a fatal contract violation. LowerBits is a pure
// masking utility with no contract dependency; it shares the module because
// its callers pair it with NarrowCast when packing values.
package safe
