// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixtures holds hand-computed numeric edge cases shared by the tests.
package fixtures

import (
	"math"

	"github.com/chewxy/math32"
)

// Decode is a raw custom-float word and the float32 bit pattern it must decode to.
type Decode struct {
	Name string
	Raw  uint32
	Bits uint32
}

// Float24Decode covers the 24-bit format (16 mantissa bits, 7 exponent bits, bias 64).
var Float24Decode = []Decode{
	{"zero", 0x000000, 0x00000000},
	{"negative zero", 0x800000, 0x80000000},
	{"one", 0x3F0000, 0x3F800000},
	{"minus 2.5", 0xC04000, 0xC0200000},
	{"zero exponent", 0x000001, 0x20000080},
	{"max", 0x7FFFFF, 0x5FFFFF80},
	{"high bits ignored", 0xFF3F0000, 0x3F800000},
}

// Float20Decode covers the 20-bit format (12 mantissa bits, 7 exponent bits, bias 64).
var Float20Decode = []Decode{
	{"zero", 0x00000, 0x00000000},
	{"negative zero", 0x80000, 0x80000000},
	{"one", 0x3F000, 0x3F800000},
	{"half", 0x3E000, 0x3F000000},
	{"minus 2.5", 0xC0400, 0xC0200000},
	{"zero exponent", 0x00001, 0x20000800},
}

// Float16Decode covers the 16-bit format (10 mantissa bits, 5 exponent bits, bias 112).
var Float16Decode = []Decode{
	{"zero", 0x0000, 0x00000000},
	{"negative zero", 0x8000, 0x80000000},
	{"one", 0x3C00, 0x3F800000},
	{"minus 2.5", 0xC100, 0xC0200000},
	{"all-ones exponent is finite", 0x7C00, 0x47800000},
	{"zero exponent is not denormal", 0x0001, 0x38002000},
	{"min", 0xFFFF, 0xC7FFE000},
}

// Fix12P4Edges are raw 12.4 fixed-point words around the interesting boundaries.
var Fix12P4Edges = []int16{
	math.MinInt16, math.MinInt16 + 1, math.MinInt16 + 15, math.MinInt16 + 16,
	-17, -16, -15, -8, -1,
	0, 1, 8, 15, 16, 17,
	math.MaxInt16 - 16, math.MaxInt16 - 15, math.MaxInt16 - 1, math.MaxInt16,
}

// Float32 specials.
var (
	PosInf  = math32.Inf(1)
	NegInf  = math32.Inf(-1)
	NaN     = math32.NaN()
	NegZero = math.Float32frombits(0x80000000)
)
