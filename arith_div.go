// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import "math"

// quoScale shrinks floating point quotient estimates so that they never
// exceed the true quotient. The combined relative error of the operand
// conversions and the division is below 2**-48.
const quoScale = 1 - 0x1p-46

// div256by128 returns q = a/b and r = a%b. b must not be zero and the
// quotient must fit in 128 bits.
//
// Each pass takes a floating point estimate of rem/b, scaled down so that it
// never overshoots, and subtracts estimate*b from the remainder. An estimate
// is accurate to about 45 bits, so three passes bring a 128 bits quotient
// down to a few units and the remaining passes finish with small estimates.
func div256by128(a uint256, b uint128) (q, r uint128) {
	rem := a
	bw := uint256{b[0], b[1]}
	fb := toFloat(b[:])
	for cmpVV(rem[:], bw[:]) >= 0 {
		t := estimateQuo(toFloat(rem[:]), fb)
		tb := mul128x128(t, b)
		subVV(rem[:], rem[:], tb[:])
		addVV(q[:], q[:], t[:])
	}
	return q, uint128{rem[0], rem[1]}
}

// div128by128 returns q = a/b and r = a%b. b must not be zero.
func div128by128(a, b uint128) (q, r uint128) {
	return div256by128(uint256{a[0], a[1]}, b)
}

// estimateQuo returns an integer t with 1 <= t <= n/d where fn and fd are
// approximations of n and d with n >= d.
func estimateQuo(fn, fd float64) uint128 {
	e := fn / fd * quoScale
	if e < 1 {
		return uint128{1, 0}
	}
	if e < 0x1p64 {
		return uint128{uint64(e), 0}
	}
	// e = frac * 2**exp with frac in [0.5, 1): the 53 bits mantissa shifted
	// left by exp-53 >= 12 bits is exact.
	frac, exp := math.Frexp(e)
	m := uint64(frac * 0x1p53)
	s := uint(exp - 53)
	if s >= _W {
		return uint128{0, m << (s - _W)}
	}
	return uint128{m << s, m >> (_W - s)}
}
