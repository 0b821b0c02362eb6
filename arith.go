// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the fixed-width unsigned integer kernel. Integers are
// arrays of 64 bits limbs, least significant limb first. Vector functions
// follow the math/big naming convention: V is a vector, W a single word and U
// a shift count.

package decimal128

import "math/bits"

const _W = bits.UintSize

type (
	uint128 [2]uint64
	uint192 [3]uint64
	uint256 [4]uint64
	uint384 [6]uint64
	uint512 [8]uint64
)

// addVV sets z = x + y and returns the carry c (0 or 1).
// x, y and z must have the same length.
func addVV(z, x, y []uint64) (c uint64) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow b (0 or 1).
// x, y and z must have the same length.
func subVV(z, x, y []uint64) (b uint64) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// addVW sets z = x + y and returns the carry c.
func addVW(z, x []uint64, y uint64) (c uint64) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y and returns the borrow b.
func subVW(z, x []uint64, y uint64) (b uint64) {
	b = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], b = bits.Sub64(x[i], b, 0)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the carry word.
func mulAddVWW(z, x []uint64, y, r uint64) (c uint64) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return c
}

// addMulVVW sets z = z + x*y and returns the carry word.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, z[i], 0)
		hi += cc
		lo, cc = bits.Add64(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return c
}

// mulVV sets z = x*y. len(z) must be len(x)+len(y) and z must not alias x or
// y. The product is exact: the destination is as wide as both operands.
func mulVV(z, x, y []uint64) {
	clear(z)
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// divVW sets z = x/y and returns the remainder r. y must not be 0.
func divVW(z, x []uint64, y uint64) (r uint64) {
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// shrVU sets z = x >> s for any shift count s and returns true if any
// non-zero bit was shifted out.
func shrVU(z, x []uint64, s uint) (lost bool) {
	n := int(s / _W)
	s %= _W
	for i := 0; i < n && i < len(x); i++ {
		lost = lost || x[i] != 0
	}
	if n < len(x) && s > 0 {
		lost = lost || x[n]<<(_W-s) != 0
	}
	for i := range z {
		j := i + n
		var w uint64
		if j < len(x) {
			w = x[j] >> s
			if s > 0 && j+1 < len(x) {
				w |= x[j+1] << (_W - s)
			}
		}
		z[i] = w
	}
	return lost
}

// truncVU clears all bits of z at position s and above.
func truncVU(z []uint64, s uint) {
	n := int(s / _W)
	if n >= len(z) {
		return
	}
	z[n] &= 1<<(s%_W) - 1
	clear(z[n+1:])
}

// bitVU returns bit s of x.
func bitVU(x []uint64, s uint) uint64 {
	n := int(s / _W)
	if n >= len(x) {
		return 0
	}
	return x[n] >> (s % _W) & 1
}

// cmpVV compares x and y as unsigned integers. The shorter operand is
// zero-extended.
func cmpVV(x, y []uint64) int {
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		var xi, yi uint64
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		switch {
		case xi < yi:
			return -1
		case xi > yi:
			return 1
		}
	}
	return 0
}

func isZero(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// bitLen returns the number of significant bits in x.
func bitLen(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*_W + bits.Len64(x[i])
		}
	}
	return 0
}

// toFloat returns a float64 approximation of x with a relative error below
// 2**-50 for up to 4 words.
func toFloat(x []uint64) (f float64) {
	for i := len(x) - 1; i >= 0; i-- {
		f = f*0x1p64 + float64(x[i])
	}
	return f
}

// Widening multiplications. The destination width is the sum of the operand
// widths so none of them can overflow.

func mul64x64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{lo, hi}
}

func mul128x128(x, y uint128) (z uint256) {
	mulVV(z[:], x[:], y[:])
	return z
}

func mul192x192(x, y uint192) (z uint384) {
	mulVV(z[:], x[:], y[:])
	return z
}

func mul256x256(x, y uint256) (z uint512) {
	mulVV(z[:], x[:], y[:])
	return z
}

// wordsPow10 is the largest power of ten that fits in a word.
const (
	wordsPow10Digits = 19
	wordsPow10       = 10000000000000000000
)

// mulPow10 sets z = z*10**n and returns a non-zero carry if the product did
// not fit in z.
func mulPow10(z []uint64, n int) (c uint64) {
	for ; n >= wordsPow10Digits; n -= wordsPow10Digits {
		c |= mulAddVWW(z, z, wordsPow10, 0)
	}
	if n > 0 {
		c |= mulAddVWW(z, z, pow10Tab64[n], 0)
	}
	return c
}

// divPow10 sets z = z/10**n and reports whether the remainder was non-zero.
func divPow10(z []uint64, n int) (sticky bool) {
	for ; n >= wordsPow10Digits; n -= wordsPow10Digits {
		sticky = divVW(z, z, wordsPow10) != 0 || sticky
		if isZero(z) {
			return sticky
		}
	}
	if n > 0 {
		sticky = divVW(z, z, pow10Tab64[n]) != 0 || sticky
	}
	return sticky
}
