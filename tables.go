// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import (
	"encoding/binary"
	"math/big"
)

// A roundClass holds the reciprocal tables used to divide coefficients of up
// to maxDigits digits by 10**x with a single multiplication.
//
// For a coefficient C with C + 5*10**(x-1) < 2**width:
//
//	e[x] = width + bitlen(10**x)
//	k[x] = ceil(2**e[x] / 10**x)
//
// then floor((C + 5*10**(x-1)) * k[x] / 2**e[x]) is C/10**x rounded to
// nearest, ties away from zero, and the discarded fraction tells exact
// results and ties apart.
type roundClass struct {
	maxDigits int
	words     int
	width     uint
	k         [][]uint64
	e         []uint
}

var roundClasses = [...]roundClass{
	{maxDigits: 18, words: 1, width: 63},
	{maxDigits: 38, words: 2, width: 127},
	{maxDigits: 57, words: 3, width: 191},
	{maxDigits: 76, words: 4, width: 255},
}

func init() {
	one, ten := big.NewInt(1), big.NewInt(10)
	for i := range roundClasses {
		rc := &roundClasses[i]
		rc.k = make([][]uint64, rc.maxDigits)
		rc.e = make([]uint, rc.maxDigits)
		for x := 1; x < rc.maxDigits; x++ {
			d := new(big.Int).Exp(ten, big.NewInt(int64(x)), nil)
			e := rc.width + uint(d.BitLen())
			k := new(big.Int).Lsh(one, e)
			k.Add(k, d)
			k.Sub(k, one)
			k.Quo(k, d)
			rc.k[x] = bigWords(k, rc.words)
			rc.e[x] = e
		}
	}
}

// classFor returns the smallest round class for coefficients of q digits.
// Exact products and aligned sums have at most 76 digits, so the widest
// class is returned for larger q.
func classFor(q int) *roundClass {
	for i := range roundClasses[:len(roundClasses)-1] {
		if q <= roundClasses[i].maxDigits {
			return &roundClasses[i]
		}
	}
	return &roundClasses[len(roundClasses)-1]
}

// bigWords returns the n least significant 64 bits words of x.
func bigWords(x *big.Int, n int) []uint64 {
	b := x.FillBytes(make([]byte, 8*n))
	w := make([]uint64, n)
	for i := range w {
		w[i] = binary.BigEndian.Uint64(b[8*(n-1-i):])
	}
	return w
}
