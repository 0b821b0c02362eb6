// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

// FMA returns x*y+z computed with a single rounding according to mode, and the
// raised flags.
//
// When several operands are NaN, y takes precedence over z, and z over x.
func FMA(x, y, z Decimal128, mode RoundingMode) (Decimal128, Flags) {
	a, b, c := x.unpack(), y.unpack(), z.unpack()
	if a.isNaN() || b.isNaN() || c.isNaN() {
		return propagateNaN(&b, &c, &a)
	}
	pneg := a.neg != b.neg
	if a.class == ClassInf || b.class == ClassInf {
		if a.class == ClassZero || b.class == ClassZero {
			return defaultNaN, Invalid
		}
		if c.class == ClassInf && c.neg != pneg {
			return defaultNaN, Invalid
		}
		return Inf(pneg), 0
	}
	if c.class == ClassInf {
		return Inf(c.neg), 0
	}

	// exact product, up to 68 digits
	p := term{neg: pneg, coeff: mul128x128(a.coeff, b.coeff), exp: a.exp + b.exp}
	p.q = digits(p.coeff[:])
	switch {
	case p.q == 0 && c.class == ClassZero:
		v := wide{neg: zeroSum(p.neg, c.neg, mode), exp: min(p.exp, c.exp)}
		return v.finalize(mode)
	case p.q == 0:
		return scaleToward(&c, max(p.exp, MinExp)), 0
	case c.class == ClassZero:
		v := wide{neg: p.neg, coeff: p.coeff, q: p.q, exp: p.exp}
		if n := min(p.exp-c.exp, Precision-p.q); n > 0 {
			mulPow10(v.coeff[:], n)
			v.q += n
			v.exp -= n
		}
		return v.finalize(mode)
	}
	return addAndRound(p, termOf(&c), mode)
}

// Mul returns the product x*y rounded according to mode, and the raised flags.
func Mul(x, y Decimal128, mode RoundingMode) (Decimal128, Flags) {
	if x.IsFinite() && y.IsFinite() && (x.IsZero() || y.IsZero()) {
		_, _, _, ex, _ := x.Parts()
		_, _, _, ey, _ := y.Parts()
		return pack(x.Signbit() != y.Signbit(), uint128{}, clampExp(ex+ey)), 0
	}
	return FMA(y, x, mulAddend, mode)
}
