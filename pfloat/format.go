// Copyright 2020 Aleksandr Demakin. All rights reserved.

package pfloat

// Format describes the bit widths of a custom float encoding.
// Implementations must return constants, with MantissaBits <= 23
// and 1 <= ExponentBits <= 8, so that every code fits a float32.
type Format interface {
	MantissaBits() uint
	ExponentBits() uint
	Name() string
}

// F24 is the 24-bit format used for vertex attributes and shader uniforms.
type F24 struct{}

func (F24) MantissaBits() uint { return 16 }
func (F24) ExponentBits() uint { return 7 }
func (F24) Name() string       { return "float24" }

// F20 is the 20-bit format used for texture coordinates.
type F20 struct{}

func (F20) MantissaBits() uint { return 12 }
func (F20) ExponentBits() uint { return 7 }
func (F20) Name() string       { return "float20" }

// F16 is the 16-bit format used for lower-precision operands.
type F16 struct{}

func (F16) MantissaBits() uint { return 10 }
func (F16) ExponentBits() uint { return 5 }
func (F16) Name() string       { return "float16" }

type (
	// Float24 is a value decoded from a 24-bit word.
	Float24 = Float[F24]
	// Float20 is a value decoded from a 20-bit word.
	Float20 = Float[F20]
	// Float16 is a value decoded from a 16-bit word.
	Float16 = Float[F16]
)

// Float24FromRaw decodes a 24-bit word.
func Float24FromRaw(raw uint32) Float24 {
	return FromRaw[F24](raw)
}

// Float20FromRaw decodes a 20-bit word.
func Float20FromRaw(raw uint32) Float20 {
	return FromRaw[F20](raw)
}

// Float16FromRaw decodes a 16-bit word.
func Float16FromRaw(raw uint32) Float16 {
	return FromRaw[F16](raw)
}

func width(f Format) uint {
	return f.MantissaBits() + f.ExponentBits() + 1
}

func bias(f Format) uint32 {
	return 128 - uint32(1)<<(f.ExponentBits()-1)
}
