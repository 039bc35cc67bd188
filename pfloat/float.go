// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package pfloat implements the custom floating-point formats of the PICA200 GPU.
//
// A raw word of a format with M mantissa bits and E exponent bits is laid out as
//
//	 M+E  M+E-1        M  M-1         0
//	 _|___|____________|__|___________|
//	 s    eeeeeeeeeeeeee  mmmmmmmmmmmmm
//
// Decoded values are kept as native float32 numbers, so arithmetic is performed
// with float32 precision. Encoding a value back into a raw word is not supported.
package pfloat

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chewxy/math32"

	mu "github.com/avdva/pica/internal/mathutil"
)

const (
	f32MantBits = 23
	f32SignBit  = 31
)

// Float is a custom float of format F.
// The zero value is positive zero.
type Float[F Format] struct {
	value float32
}

// FromRaw decodes a raw word of format F. Bits above the format's width are ignored.
//
// The exponent is re-biased onto the float32 exponent and the mantissa is
// left-aligned into the float32 mantissa. There are no denormals, infinities,
// or NaNs: a word with a zero exponent and a zero mantissa is a signed zero,
// every other word is a normal number.
func FromRaw[F Format](raw uint32) Float[F] {
	var f F
	m, e := f.MantissaBits(), f.ExponentBits()
	sign := mu.Bit(raw, m+e)
	bits := sign << f32SignBit
	if raw&mu.Mask[uint32](m+e) != 0 {
		exponent := mu.Field(raw, m, e) + bias(f)
		mantissa := mu.Field(raw, 0, m)
		bits |= exponent<<f32MantBits | mantissa<<(f32MantBits-m)
	}
	return Float[F]{value: math.Float32frombits(bits)}
}

// FromFloat32 returns a value holding v as is.
// It is meant for results of arithmetic, not for decoding register words.
func FromFloat32[F Format](v float32) Float[F] {
	return Float[F]{value: v}
}

// Zero returns positive zero.
func Zero[F Format]() Float[F] {
	return Float[F]{}
}

// Width returns the size of a raw word of the value's format in bits.
func (f Float[F]) Width() uint {
	var format F
	return width(format)
}

// Bias returns the constant added to the raw exponent to get a float32 exponent.
func (f Float[F]) Bias() uint32 {
	var format F
	return bias(format)
}

// Float32 returns the native value.
func (f Float[F]) Float32() float32 {
	return f.value
}

// Float64 returns the native value converted to float64.
func (f Float[F]) Float64() float64 {
	return float64(f.value)
}

// IsNaN reports whether f is not-a-number.
func (f Float[F]) IsNaN() bool {
	return math32.IsNaN(f.value)
}

// IsInf reports whether f is an infinity, according to sign.
// See math.IsInf.
func (f Float[F]) IsInf(sign int) bool {
	return math32.IsInf(f.value, sign)
}

// Signbit reports whether f is negative or negative zero.
func (f Float[F]) Signbit() bool {
	return math32.Signbit(f.value)
}

// Add returns f+other.
func (f Float[F]) Add(other Float[F]) Float[F] {
	return Float[F]{value: f.value + other.value}
}

// Sub returns f-other.
func (f Float[F]) Sub(other Float[F]) Float[F] {
	return Float[F]{value: f.value - other.value}
}

// Mul returns f*other.
// Unlike IEEE 754, a zero operand yields positive zero unless the other
// operand is NaN, so 0*Inf is 0, while 0*NaN and NaN*0 are NaN.
func (f Float[F]) Mul(other Float[F]) Float[F] {
	if (f.value == 0 && !math32.IsNaN(other.value)) ||
		(other.value == 0 && !math32.IsNaN(f.value)) {
		return Zero[F]()
	}
	return Float[F]{value: f.value * other.value}
}

// Div returns f/other. Division by zero gives an infinity or NaN, as for float32.
func (f Float[F]) Div(other Float[F]) Float[F] {
	return Float[F]{value: f.value / other.value}
}

// Neg returns -f.
func (f Float[F]) Neg() Float[F] {
	return Float[F]{value: -f.value}
}

// Eq returns f == other. Both zeros are equal, NaN is not equal to anything.
func (f Float[F]) Eq(other Float[F]) bool {
	return f.value == other.value
}

// Ne returns f != other.
func (f Float[F]) Ne(other Float[F]) bool {
	return f.value != other.value
}

// Less returns f < other.
func (f Float[F]) Less(other Float[F]) bool {
	return f.value < other.value
}

// LessEq returns f <= other.
func (f Float[F]) LessEq(other Float[F]) bool {
	return f.value <= other.value
}

// Greater returns f > other.
func (f Float[F]) Greater(other Float[F]) bool {
	return f.value > other.value
}

// GreaterEq returns f >= other.
func (f Float[F]) GreaterEq(other Float[F]) bool {
	return f.value >= other.value
}

// String returns the shortest decimal representation of the native value.
func (f Float[F]) String() string {
	return strconv.FormatFloat(float64(f.value), 'g', -1, 32)
}

// GoString returns debug string representation.
func (f Float[F]) GoString() string {
	var format F
	return f.String() + fmt.Sprintf(" {%s, %#08x}", format.Name(), math.Float32bits(f.value))
}
