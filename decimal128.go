// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

// Format parameters of decimal128.
const (
	Precision = 34    // coefficient digits
	MaxExp    = 6111  // largest exponent of a coefficient unit
	MinExp    = -6176 // smallest exponent of a coefficient unit
	bias      = -MinExp
)

// Encoding masks, high word.
const (
	signBit      = 1 << 63
	nanMask      = 0x7c00000000000000 // 11111 in bits 126..122
	snanMask     = 0x7e00000000000000 // NaN with bit 121 set
	infMask      = 0x7800000000000000 // 11110 in bits 126..122
	steeringMask = 0x6000000000000000 // 11 in bits 126..125: alternate form
	coeffHiMask  = 1<<49 - 1
	payloadMask  = 1<<46 - 1
)

var (
	maxCoeff   = uint128{0x378d8e63ffffffff, 0x0001ed09bead87c0} // 10**34 - 1
	maxPayload = uint128{0x38c15b09ffffffff, 0x0000314dc6448d93} // 10**33 - 1
)

// A Decimal128 is an IEEE 754-2008 decimal128 floating point number in the
// binary integer decimal encoding: a sign, a coefficient of up to 34 decimal
// digits stored as a binary integer and an exponent in [MinExp, MaxExp].
//
// The zero value is +0E-6176. Decimal128 values are immutable and safe for
// concurrent use.
type Decimal128 struct {
	hi, lo uint64
}

// Well known values.
var (
	Zero              = Decimal128{hi: bias << 49}                                  // +0E+0
	One               = Decimal128{hi: bias << 49, lo: 1}                           // +1E+0
	MaxFinite         = Decimal128{hi: 0x5fffed09bead87c0, lo: 0x378d8e63ffffffff} // +9999999999999999999999999999999999E+6111
	SmallestSubnormal = Decimal128{lo: 1}                                           // +1E-6176

	mulAddend  = Decimal128{hi: (MaxExp + bias) << 49} // +0E+6111
	defaultNaN = Decimal128{hi: nanMask}
)

// FromBits returns the Decimal128 with the given encoding.
func FromBits(hi, lo uint64) Decimal128 { return Decimal128{hi: hi, lo: lo} }

// Bits returns the encoding of x.
func (x Decimal128) Bits() (hi, lo uint64) { return x.hi, x.lo }

// Inf returns +Inf if neg is false, -Inf otherwise.
func Inf(neg bool) Decimal128 {
	return Decimal128{hi: infMask}.setSign(neg)
}

// NaN returns a quiet NaN with an empty payload.
func NaN() Decimal128 { return defaultNaN }

// New returns the finite value (-1)**neg * coeff * 10**exp where coeff is the
// 128 bits integer hi:lo. It reports false and returns NaN if coeff has more
// than 34 digits or if exp is outside [MinExp, MaxExp].
func New(neg bool, hi, lo uint64, exp int) (Decimal128, bool) {
	c := uint128{lo, hi}
	if cmpVV(c[:], maxCoeff[:]) > 0 || exp < MinExp || exp > MaxExp {
		return defaultNaN, false
	}
	return pack(neg, c, exp), true
}

func pack(neg bool, c uint128, exp int) Decimal128 {
	return Decimal128{hi: uint64(exp+bias)<<49 | c[1], lo: c[0]}.setSign(neg)
}

func (x Decimal128) setSign(neg bool) Decimal128 {
	x.hi &^= signBit
	if neg {
		x.hi |= signBit
	}
	return x
}

// A Class describes the kind of value held by a Decimal128.
type Class byte

// The Class value order is relevant - do not change!
const (
	ClassZero   Class = iota // zero
	ClassFinite              // finite
	ClassInf                 // inf
	ClassQNaN                // qNaN
	ClassSNaN                // sNaN
)

//go:generate stringer -type=Class -linecomment

// An operand is an unpacked Decimal128. For NaNs, coeff is the canonical
// payload. exp is only meaningful for zero and finite values.
type operand struct {
	class Class
	neg   bool
	exp   int
	coeff uint128
}

func (x Decimal128) unpack() (op operand) {
	op.neg = x.hi&signBit != 0
	switch {
	case x.hi&nanMask == nanMask:
		op.class = ClassQNaN
		if x.hi&snanMask == snanMask {
			op.class = ClassSNaN
		}
		op.coeff = uint128{x.lo, x.hi & payloadMask}
		if cmpVV(op.coeff[:], maxPayload[:]) > 0 {
			op.coeff = uint128{}
		}
		return op
	case x.hi&infMask == infMask:
		op.class = ClassInf
		return op
	case x.hi&steeringMask == steeringMask:
		// The alternate form stores 100 followed by 111 bits, so every
		// coefficient exceeds 10**34-1: the value is a non-canonical zero.
		op.exp = int(x.hi>>47&0x3fff) - bias
		return op
	}
	op.exp = int(x.hi>>49&0x3fff) - bias
	op.coeff = uint128{x.lo, x.hi & coeffHiMask}
	if isZero(op.coeff[:]) || cmpVV(op.coeff[:], maxCoeff[:]) > 0 {
		op.coeff = uint128{}
		return op
	}
	op.class = ClassFinite
	return op
}

func (op *operand) isNaN() bool { return op.class >= ClassQNaN }

// quietNaN returns op, a NaN operand, as a quiet NaN.
func (op *operand) quietNaN() Decimal128 {
	return Decimal128{hi: nanMask | op.coeff[1], lo: op.coeff[0]}.setSign(op.neg)
}

// propagateNaN returns the first NaN operand of ops as a quiet NaN and raises
// Invalid if any of them is a signaling NaN.
func propagateNaN(ops ...*operand) (z Decimal128, f Flags) {
	found := false
	for _, op := range ops {
		if !op.isNaN() {
			continue
		}
		if op.class == ClassSNaN {
			f |= Invalid
		}
		if !found {
			z, found = op.quietNaN(), true
		}
	}
	return z, f
}

// Classify returns the class of x.
func (x Decimal128) Classify() Class {
	op := x.unpack()
	return op.class
}

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal128) IsNaN() bool { return x.hi&nanMask == nanMask }

// IsSignaling reports whether x is a signaling NaN.
func (x Decimal128) IsSignaling() bool { return x.hi&snanMask == snanMask }

// IsInf reports whether x is +Inf or -Inf.
func (x Decimal128) IsInf() bool { return x.hi&nanMask == infMask }

// IsZero reports whether x is a zero, including non-canonical encodings.
func (x Decimal128) IsZero() bool { return x.Classify() == ClassZero }

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal128) IsFinite() bool { return x.hi&infMask != infMask }

// Signbit reports whether x is negative or negative zero.
func (x Decimal128) Signbit() bool { return x.hi&signBit != 0 }

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x Decimal128) Sign() int {
	switch x.Classify() {
	case ClassZero, ClassQNaN, ClassSNaN:
		return 0
	}
	if x.Signbit() {
		return -1
	}
	return 1
}

// Neg returns x with its sign flipped. It is exact, raises no flags and
// applies to NaNs too.
func (x Decimal128) Neg() Decimal128 {
	x.hi ^= signBit
	return x
}

// Abs returns x with its sign cleared.
func (x Decimal128) Abs() Decimal128 {
	x.hi &^= signBit
	return x
}

// Parts returns the sign, coefficient and exponent of a finite x, with a
// non-canonical coefficient read as zero. ok is false for infinities and
// NaNs.
func (x Decimal128) Parts() (neg bool, hi, lo uint64, exp int, ok bool) {
	op := x.unpack()
	if op.class > ClassFinite {
		return op.neg, 0, 0, 0, false
	}
	return op.neg, op.coeff[1], op.coeff[0], op.exp, true
}

// Payload returns the canonical payload of a NaN x, or 0.
func (x Decimal128) Payload() (hi, lo uint64) {
	op := x.unpack()
	if !op.isNaN() {
		return 0, 0
	}
	return op.coeff[1], op.coeff[0]
}
