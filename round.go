// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

// indicators describe how a rounded coefficient relates to the exact value.
// At most one of them is set; none means the result is exact.
type indicators struct {
	belowMidpoint       bool // rounded down, the discarded fraction was in (0, 1/2)
	aboveMidpoint       bool // rounded up, the discarded fraction was in (1/2, 1)
	midpointRoundedDown bool // tie rounded down to even
	midpointRoundedUp   bool // tie rounded up to even
}

func (ind indicators) inexact() bool {
	return ind.belowMidpoint || ind.aboveMidpoint || ind.midpointRoundedDown || ind.midpointRoundedUp
}

// roundedUp reports whether the magnitude of the result exceeds the exact
// value.
func (ind indicators) roundedUp() bool { return ind.aboveMidpoint || ind.midpointRoundedUp }

func (ind indicators) roundedDown() bool { return ind.belowMidpoint || ind.midpointRoundedDown }

// A roundResult is a coefficient rounded to nearest, ties to even.
//
// If carry is set, rounding produced 10**n where the caller expected n
// digits: coeff is then 10**(n-1) and the exponent must be incremented.
type roundResult struct {
	coeff uint256
	carry bool
	ind   indicators
}

// roundToNearest rounds the q digits coefficient c to q-x digits. x must be
// in [1, q-1] and q at most 76.
func roundToNearest(c []uint64, q, x int) roundResult {
	switch rc := classFor(q); rc.words {
	case 1:
		return round64(c[0], rc, q, x)
	case 2:
		return round128(uint128(c[:2]), rc, q, x)
	case 3:
		return round192(uint192(c[:3]), rc, q, x)
	default:
		return round256(uint256(c[:4]), rc, q, x)
	}
}

func round64(c uint64, rc *roundClass, q, x int) roundResult {
	c += halfTab[x][0]
	p := mul64x64(c, rc.k[x][0])
	return rc.reduce(p[:], q, x)
}

func round128(c uint128, rc *roundClass, q, x int) roundResult {
	addVV(c[:], c[:], halfTab[x][:2])
	p := mul128x128(c, uint128(rc.k[x]))
	return rc.reduce(p[:], q, x)
}

func round192(c uint192, rc *roundClass, q, x int) roundResult {
	addVV(c[:], c[:], halfTab[x][:3])
	p := mul192x192(c, uint192(rc.k[x]))
	return rc.reduce(p[:], q, x)
}

func round256(c uint256, rc *roundClass, q, x int) roundResult {
	addVV(c[:], c[:], halfTab[x][:])
	p := mul256x256(c, uint256(rc.k[x]))
	return rc.reduce(p[:], q, x)
}

// reduce extracts the rounded coefficient from the product p of the biased
// coefficient with k[x].
func (rc *roundClass) reduce(p []uint64, q, x int) (r roundResult) {
	e := rc.e[x]
	shrVU(r.coeff[:], p, e)
	half := bitVU(p, e-1) != 0
	truncVU(p, e-1)
	small := cmpVV(p, rc.k[x]) < 0
	switch {
	case half && !small:
		r.ind.belowMidpoint = true
	case !half && small:
		// tie: the biased quotient is the value rounded away from zero
		if r.coeff[0]&1 != 0 {
			subVW(r.coeff[:], r.coeff[:], 1)
			r.ind.midpointRoundedDown = true
		} else {
			r.ind.midpointRoundedUp = true
		}
	case !half:
		r.ind.aboveMidpoint = true
	}
	if n := q - x; cmpVV(r.coeff[:], pow10Tab[n][:]) == 0 {
		r.coeff = pow10Tab[n-1]
		r.carry = true
	}
	return r
}

// roundAt rounds the q digits coefficient c by dropping x digits. Unlike
// roundToNearest, x may be larger than q-1 in which case the result is 0 or
// 1 and carry is never set.
func roundAt(c []uint64, q, x int) (r roundResult) {
	switch {
	case x <= 0:
		copy(r.coeff[:], c)
	case x < q:
		r = roundToNearest(c, q, x)
	case x == q:
		switch cmpVV(c, halfTab[q][:]) {
		case -1:
			r.ind.belowMidpoint = true
		case 0:
			r.ind.midpointRoundedDown = true
		default:
			r.coeff[0] = 1
			r.ind.aboveMidpoint = true
		}
	default:
		r.ind.belowMidpoint = true
	}
	return r
}

// adjustment returns the correction, in units of the last digit, to apply to
// a magnitude rounded to nearest even in order to honor mode m.
func (m RoundingMode) adjustment(neg bool, ind indicators) int {
	switch m {
	case ToNearestAway:
		if ind.midpointRoundedDown {
			return 1
		}
	case ToZero:
		if ind.roundedUp() {
			return -1
		}
	case ToPositiveInf, ToNegativeInf:
		if (m == ToNegativeInf) == neg {
			// rounding away from zero
			if ind.roundedDown() {
				return 1
			}
		} else if ind.roundedUp() {
			return -1
		}
	}
	return 0
}

// correct applies the rounding mode correction to r, a coefficient of n
// digits rounded to nearest even.
func (r *roundResult) correct(neg bool, m RoundingMode, n int) {
	switch m.adjustment(neg, r.ind) {
	case -1:
		if r.carry {
			// 10**n - 1 at the original exponent
			r.coeff = pow10Tab[n]
			r.carry = false
		}
		subVW(r.coeff[:], r.coeff[:], 1)
	case 1:
		addVW(r.coeff[:], r.coeff[:], 1)
		if n > 0 && cmpVV(r.coeff[:], pow10Tab[n][:]) == 0 {
			r.coeff = pow10Tab[n-1]
			r.carry = true
		}
	}
}

// overflowResult returns the result of an overflow with the given sign:
// infinity, or the largest finite number when m rounds toward zero for that
// sign.
func overflowResult(neg bool, m RoundingMode) Decimal128 {
	switch {
	case m == ToZero, m == ToNegativeInf && !neg, m == ToPositiveInf && neg:
		return MaxFinite.setSign(neg)
	}
	return Inf(neg)
}
