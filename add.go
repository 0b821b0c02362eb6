// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

// A term is a finite operand of an addition: a sign, a coefficient of up to
// 68 digits and an exponent.
type term struct {
	neg   bool
	coeff uint256
	q     int
	exp   int
}

func termOf(op *operand) term {
	t := term{neg: op.neg, exp: op.exp}
	copy(t.coeff[:], op.coeff[:])
	t.q = digits(t.coeff[:])
	return t
}

func (t *term) top() int { return t.q + t.exp }

// alignCase classifies the relative position of two non-zero terms.
type alignCase int

const (
	// The smaller term lines up with the result digits: exact sum.
	caseExactAlign alignCase = iota
	// Both terms start at most one digit apart; digits may cancel out.
	caseCancellation
	// The smaller term straddles the rounding position; its low digits are
	// folded into a sticky digit.
	casePartialOverlap
	// The smaller term lies entirely below the rounding position and only
	// contributes a sticky digit.
	caseDominant
)

// alignment returns the alignment case of a and b, with a.top() >= b.top(),
// and the exponent of the sticky digit position, valid for the partial
// overlap and dominant cases.
func alignment(a, b *term) (alignCase, int) {
	if a.top()-b.top() <= 1 {
		if a.neg != b.neg {
			return caseCancellation, 0
		}
		return caseExactAlign, 0
	}
	// No digit of a is below k, and a+b has at least Precision+2 digits
	// above k, so the digits of b below k only matter through their
	// non-zero-ness.
	k := min(a.exp, a.top()-Precision-2)
	switch {
	case b.exp >= k:
		return caseExactAlign, 0
	case b.top() <= k:
		return caseDominant, k
	}
	return casePartialOverlap, k
}

// addAndRound computes the correctly rounded sum of the non-zero terms a and
// b. Coefficients may have up to 68 digits each.
func addAndRound(a, b term, mode RoundingMode) (Decimal128, Flags) {
	if a.top() < b.top() {
		a, b = b, a
	}
	c, k := alignment(&a, &b)
	switch c {
	case caseDominant:
		b.coeff = uint256{1}
		b.exp = k - 1
	case casePartialOverlap:
		sticky := divPow10(b.coeff[:], k-b.exp)
		var s uint64
		if sticky {
			s = 1
		}
		mulAddVWW(b.coeff[:], b.coeff[:], 10, s)
		b.exp = k - 1
	}
	// The aligned coefficients have at most 69 digits.
	exp := min(a.exp, b.exp)
	mulPow10(a.coeff[:], a.exp-exp)
	mulPow10(b.coeff[:], b.exp-exp)
	v := wide{neg: a.neg, exp: exp}
	switch {
	case a.neg == b.neg:
		addVV(v.coeff[:], a.coeff[:], b.coeff[:])
	case cmpVV(a.coeff[:], b.coeff[:]) >= 0:
		subVV(v.coeff[:], a.coeff[:], b.coeff[:])
	default:
		subVV(v.coeff[:], b.coeff[:], a.coeff[:])
		v.neg = b.neg
	}
	v.q = digits(v.coeff[:])
	if v.q == 0 {
		// exact cancellation
		v.neg = mode == ToNegativeInf
	}
	return v.finalize(mode)
}

// zeroSum returns the sign of an exact zero sum of terms with signs na and nb.
func zeroSum(na, nb bool, mode RoundingMode) bool {
	if na == nb {
		return na
	}
	return mode == ToNegativeInf
}

// scaleToward returns the finite op with its coefficient multiplied by a power
// of ten so that its exponent gets as close to exp as possible.
func scaleToward(op *operand, exp int) Decimal128 {
	if exp >= op.exp {
		return pack(op.neg, op.coeff, op.exp)
	}
	n := min(op.exp-exp, Precision-digits128(op.coeff))
	c := op.coeff
	mulPow10(c[:], n)
	return pack(op.neg, c, op.exp-n)
}

// Add returns the sum x+y rounded according to mode, and the raised flags.
func Add(x, y Decimal128, mode RoundingMode) (Decimal128, Flags) {
	a, b := x.unpack(), y.unpack()
	if a.isNaN() || b.isNaN() {
		return propagateNaN(&a, &b)
	}
	if a.class == ClassInf {
		if b.class == ClassInf && a.neg != b.neg {
			return defaultNaN, Invalid
		}
		return Inf(a.neg), 0
	}
	if b.class == ClassInf {
		return Inf(b.neg), 0
	}
	switch {
	case a.class == ClassZero && b.class == ClassZero:
		return pack(zeroSum(a.neg, b.neg, mode), uint128{}, min(a.exp, b.exp)), 0
	case a.class == ClassZero:
		return scaleToward(&b, a.exp), 0
	case b.class == ClassZero:
		return scaleToward(&a, b.exp), 0
	}
	return addAndRound(termOf(&a), termOf(&b), mode)
}

// Sub returns the difference x-y rounded according to mode, and the raised
// flags.
func Sub(x, y Decimal128, mode RoundingMode) (Decimal128, Flags) {
	if !y.IsNaN() {
		y = y.Neg()
	}
	return Add(x, y, mode)
}
