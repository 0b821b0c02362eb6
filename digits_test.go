// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	var zero uint256
	require.Equal(t, 0, digits(zero[:]))
	for n := 0; n <= maxPow10; n++ {
		p := pow10Tab[n]
		require.Equal(t, n+1, digits(p[:]), "10**%d", n)
		subVW(p[:], p[:], 1)
		require.Equal(t, n, digits(p[:]), "10**%d-1", n)
	}
	for i := 0; i < 10000; i++ {
		x := rndWords(4)
		want := 0
		if b := toBig(x); b.Sign() != 0 {
			want = len(b.String())
		}
		require.Equal(t, want, digits(x), "%x", x)
	}
}

func TestDigits64(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := rnd.Uint64() >> rnd.Intn(64)
		d := 0
		for m := n; m != 0; m /= 10 {
			d++
		}
		require.Equal(t, d, digits64(n), "%d", n)
	}
}

func TestStripZeros(t *testing.T) {
	td := []struct {
		x    string
		max  int
		want string
		n    int
	}{
		{"1000", 5, "1", 3},
		{"1000", 2, "10", 2},
		{"1234", 5, "1234", 0},
		{"100000000000000000000000000000000000", 40, "1", 35},
		{"123400000000000000000000000000000000", 30, "123400", 30},
		{"18446744073709551616000", 10, "18446744073709551616", 3},
	}
	for _, d := range td {
		b, _ := new(big.Int).SetString(d.x, 10)
		x := bigWords(b, 2)
		n := stripZeros(x, d.max)
		require.Equal(t, d.n, n, d.x)
		require.Equal(t, d.want, toBig(x).String(), d.x)
	}
}

var benchD int

func BenchmarkDigits(b *testing.B) {
	x := rndWords(4)
	for i := 0; i < b.N; i++ {
		benchD = digits(x)
	}
}
