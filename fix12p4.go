// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package pica implements numeric value types of the PICA200 GPU.
// Fix12P4 is a 16-bit fixed-point number used for coordinates,
// see package pfloat for the custom floating-point formats used in registers.
package pica

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/pica/internal/mathutil"
)

const (
	fracBits = 4
	scale    = 1 << fracBits

	// FracMask selects the fractional bits of a raw value.
	FracMask = int16(scale - 1)
	// IntMask selects the integer bits of a raw value.
	IntMask = ^FracMask
)

const (
	// Zero is the zero value.
	Zero = Fix12P4(0)
	// Max is the maximum possible value, 2047.9375.
	Max = Fix12P4(math.MaxInt16)
	// Min is the minimum possible value, -2048.
	Min = Fix12P4(math.MinInt16)
)

var (
	// ErrDivisionByZero is returned when dividing by a zero value.
	ErrDivisionByZero = errors.New("division by zero")
)

// Fix12P4 is a signed fixed-point number with 12 integer and 4 fraction bits.
// Negative values are stored in two's complement.
//
//	15                   4    0
//	_|___________________|____|
//	 iiiiiiiiiiii        ffff
//
// The represented value is raw / 16. All operations wrap on overflow,
// like a 16-bit hardware register would.
type Fix12P4 int16

// FromRaw returns a value for the given raw word.
func FromRaw(raw int16) Fix12P4 {
	return Fix12P4(raw)
}

// FromInt returns a value with integer part i and no fraction.
// i is truncated to 12 bits.
func FromInt(i int) Fix12P4 {
	return FromIntAndFrac(i, 0)
}

// FromIntAndFrac returns a value with integer bits i and fraction bits frac.
// i is truncated to 12 bits, frac to 4 bits. frac is unsigned and counts
// sixteenths above i, so FromIntAndFrac(-1, 8) is -0.5.
func FromIntAndFrac(i int, frac uint) Fix12P4 {
	return Fix12P4(int16(i*scale&int(IntMask) | int(frac&uint(FracMask))))
}

// FromFloat32 returns f rounded to the nearest sixteenth, halves away from zero.
// Values out of range wrap around. NaN and infinities become Zero.
func FromFloat32(f float32) Fix12P4 {
	return Fix12P4(mu.WrapInt16(math.Round(float64(f) * scale)))
}

// Raw returns the raw 16-bit word.
func (f Fix12P4) Raw() int16 {
	return int16(f)
}

// Int returns the integer part, rounded towards negative infinity.
func (f Fix12P4) Int() int16 {
	return (int16(f) & IntMask) / scale
}

// Frac returns the fraction bits, 0 to 15 sixteenths, always non-negative.
func (f Fix12P4) Frac() uint16 {
	return uint16(int16(f) & FracMask)
}

// Floor returns the greatest integral value less than or equal to f.
func (f Fix12P4) Floor() Fix12P4 {
	return Fix12P4(int16(f) & IntMask)
}

// Ceil returns the least integral value greater than or equal to f.
// Ceil of a value above 2047 wraps to -2048.
func (f Fix12P4) Ceil() Fix12P4 {
	return (f + Fix12P4(FracMask)).Floor()
}

// Float32 returns f as a float32. The conversion is exact.
func (f Fix12P4) Float32() float32 {
	return float32(f) / scale
}

// Float64 returns f as a float64. The conversion is exact.
func (f Fix12P4) Float64() float64 {
	return float64(f) / scale
}

// Decimal returns f as an exact decimal number.
func (f Fix12P4) Decimal() decimal.Decimal {
	// 1/16 = 625/10^4
	return decimal.New(int64(f)*625, -4)
}

// Add returns f+other.
func (f Fix12P4) Add(other Fix12P4) Fix12P4 {
	return f + other
}

// Sub returns f-other.
func (f Fix12P4) Sub(other Fix12P4) Fix12P4 {
	return f - other
}

// Neg returns -f. Note, that -Min == Min.
func (f Fix12P4) Neg() Fix12P4 {
	return -f
}

// Mul returns f*other. The result is truncated towards zero, not rounded.
func (f Fix12P4) Mul(other Fix12P4) Fix12P4 {
	return Fix12P4(int16(int32(f) * int32(other) / scale))
}

// Div returns f/other. The result is truncated towards zero, not rounded.
// Returns ErrDivisionByZero if other is zero.
func (f Fix12P4) Div(other Fix12P4) (Fix12P4, error) {
	if other == Zero {
		return Zero, ErrDivisionByZero
	}
	return Fix12P4(int16(int32(f) * scale / int32(other))), nil
}

// MustDiv is like Div, but panics if other is zero.
func (f Fix12P4) MustDiv(other Fix12P4) Fix12P4 {
	res, err := f.Div(other)
	if err != nil {
		panic(err)
	}
	return res
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (f Fix12P4) Cmp(other Fix12P4) int {
	return mu.Int64Sign(int64(f) - int64(other))
}

// Eq returns f == other.
func (f Fix12P4) Eq(other Fix12P4) bool {
	return f == other
}

// Less returns f < other.
func (f Fix12P4) Less(other Fix12P4) bool {
	return f < other
}

// LessEq returns f <= other.
func (f Fix12P4) LessEq(other Fix12P4) bool {
	return f <= other
}

// Greater returns f > other.
func (f Fix12P4) Greater(other Fix12P4) bool {
	return f > other
}

// GreaterEq returns f >= other.
func (f Fix12P4) GreaterEq(other Fix12P4) bool {
	return f >= other
}

// String returns the exact decimal representation of the value.
func (f Fix12P4) String() string {
	return f.Decimal().String()
}

// GoString returns debug string representation.
func (f Fix12P4) GoString() string {
	return f.String() + fmt.Sprintf(" {%v, %v}", f.Int(), f.Frac())
}
