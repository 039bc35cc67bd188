// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil holds bit-level helpers shared by the numeric types.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mask returns a value with the n lowest bits set.
func Mask[T constraints.Unsigned](n uint) T {
	return T(1)<<n - 1
}

// Field extracts n bits of v starting at bit lo.
func Field[T constraints.Unsigned](v T, lo, n uint) T {
	return v >> lo & Mask[T](n)
}

// Bit returns the bit of v at position pos, as 0 or 1.
func Bit[T constraints.Unsigned](v T, pos uint) T {
	return v >> pos & 1
}

// WrapInt16 converts an integral float to int16 the way a 16-bit register
// stores it: the value is taken modulo 2^16 and reinterpreted as two's complement.
// NaN and infinities have no integral value and become 0.
func WrapInt16(f float64) int16 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	// math.Mod is exact, the result fits int32.
	return int16(int32(math.Mod(f, 1<<16)))
}

// Int64Sign returns -1, 0, or 1 depending on the sign of v.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
