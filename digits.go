// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import (
	"math/big"
	"math/bits"
)

var pow10Tab64 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// maxPow10 is the largest n such that 10**n fits in 256 bits.
const maxPow10 = 77

var (
	// pow10Tab[n] = 10**n
	pow10Tab [maxPow10 + 1]uint256
	// halfTab[n] = 5 * 10**(n-1), half a unit in the n-th digit.
	halfTab [maxPow10 + 1]uint256
	// pow2digitsTab[n] is the number of decimal digits of 2**n - 1.
	pow2digitsTab [4*_W + 1]int
)

func init() {
	p := uint256{1}
	for n := range pow10Tab {
		pow10Tab[n] = p
		mulAddVWW(p[:], p[:], 10, 0)
	}
	for n := 1; n < len(halfTab); n++ {
		h := pow10Tab[n-1]
		mulAddVWW(h[:], h[:], 5, 0)
		halfTab[n] = h
	}
	one := big.NewInt(1)
	for n := 1; n < len(pow2digitsTab); n++ {
		x := new(big.Int).Lsh(one, uint(n))
		pow2digitsTab[n] = len(x.Sub(x, one).String())
	}
}

// digits64 returns the number of decimal digits of x. It returns 0 for x == 0.
func digits64(x uint64) int {
	if x == 0 {
		return 0
	}
	n := pow2digitsTab[bits.Len64(x)]
	if x < pow10Tab64[n-1] {
		n--
	}
	return n
}

// digits returns n such that 10**(n-1) <= x < 10**n, or 0 for x == 0. x must
// be at most 4 words long.
func digits(x []uint64) int {
	b := bitLen(x)
	if b <= _W {
		return digits64(x[0])
	}
	n := pow2digitsTab[b]
	if cmpVV(x, pow10Tab[n-1][:]) < 0 {
		n--
	}
	return n
}

func digits128(x uint128) int { return digits(x[:]) }

func dec64TrailingZeros(n uint64) int {
	var d int
	if n%10000000000000000 == 0 {
		n /= 10000000000000000
		d += 16
	}
	if n%100000000 == 0 {
		n /= 100000000
		d += 8
	}
	if n%10000 == 0 {
		n /= 10000
		d += 4
	}
	if n%100 == 0 {
		n /= 100
		d += 2
	}
	if n%10 == 0 {
		d++
	}
	return d
}

// stripZeros removes up to n trailing decimal zeros from the non-zero x and
// returns the number of digits removed.
func stripZeros(x []uint64, n int) (d int) {
	if bitLen(x) <= _W {
		d = min(dec64TrailingZeros(x[0]), n)
		x[0] /= pow10Tab64[d]
		return d
	}
	var t uint256
	for ; d < n; d++ {
		if divVW(t[:len(x)], x, 10) != 0 {
			break
		}
		copy(x, t[:len(x)])
	}
	return d
}
