// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Packing caller-supplied lengths and offsets into the fixed-width fields
//     of a BLAKE2 parameter block
//   - Converting between Go's int (platform-dependent) and fixed-width types
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, lengths already checked against a block size), use direct type
// casts instead to avoid overhead.
package conv
