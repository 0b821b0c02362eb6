// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

// Quo returns the quotient x/y rounded according to mode, and the raised
// flags.
//
// Exact quotients are returned with the exponent closest to the preferred
// exponent ex-ey.
func Quo(x, y Decimal128, mode RoundingMode) (Decimal128, Flags) {
	a, b := x.unpack(), y.unpack()
	if a.isNaN() || b.isNaN() {
		return propagateNaN(&a, &b)
	}
	neg := a.neg != b.neg
	switch {
	case a.class == ClassInf:
		if b.class == ClassInf {
			return defaultNaN, Invalid
		}
		return Inf(neg), 0
	case b.class == ClassInf:
		return pack(neg, uint128{}, MinExp), 0
	case b.class == ClassZero:
		if a.class == ClassZero {
			return defaultNaN, Invalid
		}
		return Inf(neg), DivByZero
	case a.class == ClassZero:
		return pack(neg, uint128{}, clampExp(a.exp-b.exp)), 0
	}

	pref := a.exp - b.exp
	if q, r := div128by128(a.coeff, b.coeff); isZero(r[:]) {
		v := newWide(neg, q[:], pref)
		return v.finalize(mode)
	}

	// Scale the dividend so that the quotient has Precision or Precision+1
	// digits.
	q1, q2 := digits128(a.coeff), digits128(b.coeff)
	s := Precision + q2 - q1
	n := uint256{a.coeff[0], a.coeff[1]}
	mulPow10(n[:], s)
	q, r := div256by128(n, b.coeff)
	v := newWide(neg, q[:], pref-s)
	if isZero(r[:]) {
		d := stripZeros(v.coeff[:2], pref-v.exp)
		v.q -= d
		v.exp += d
		return v.finalize(mode)
	}
	if v.q == Precision && v.exp >= MinExp {
		return v.roundQuo(r, b.coeff, mode)
	}
	// The sticky digit stands for the non-zero remainder.
	mulAddVWW(v.coeff[:], v.coeff[:], 10, 1)
	v.q++
	v.exp--
	return v.finalize(mode)
}

// roundQuo rounds the Precision digits quotient v of a division by d that left
// the non-zero remainder r.
func (v *wide) roundQuo(r, d uint128, mode RoundingMode) (Decimal128, Flags) {
	res := roundResult{coeff: v.coeff}
	addVV(r[:], r[:], r[:])
	switch cmpVV(r[:], d[:]) {
	case -1:
		res.ind.belowMidpoint = true
	case 0:
		if res.coeff[0]&1 == 0 {
			res.ind.midpointRoundedDown = true
			break
		}
		addVW(res.coeff[:], res.coeff[:], 1)
		res.ind.midpointRoundedUp = true
	default:
		addVW(res.coeff[:], res.coeff[:], 1)
		res.ind.aboveMidpoint = true
	}
	if cmpVV(res.coeff[:], pow10Tab[Precision][:]) == 0 {
		res.coeff = pow10Tab[Precision-1]
		res.carry = true
	}
	res.correct(v.neg, mode, Precision)
	exp := v.exp
	if res.carry {
		exp++
	}
	return v.result(res, exp, mode)
}
