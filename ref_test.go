// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// This file implements a slow math/big model of decimal128 rounding used to
// check the arithmetic operations on random operands.

var bigOne = big.NewInt(1)

// num is a finite decimal128 value along with its exact big representation.
type num struct {
	neg bool
	c   *big.Int
	exp int
	d   Decimal128
}

func (n num) String() string { return n.d.String() }

func bigDigits(c *big.Int) int {
	if c.Sign() == 0 {
		return 0
	}
	return len(c.String())
}

func refPack(t *testing.T, neg bool, c *big.Int, exp int) Decimal128 {
	t.Helper()
	w := bigWords(c, 2)
	d, ok := New(neg, w[1], w[0], exp)
	require.True(t, ok, "refPack(%v, %s, %d)", neg, c, exp)
	return d
}

// refDiv returns c/10**n rounded according to mode for the sign neg, and
// whether it was inexact.
func refDiv(neg bool, c *big.Int, n int, mode RoundingMode) (*big.Int, bool) {
	d := bigPow10(n)
	q, r := new(big.Int).QuoRem(c, d, new(big.Int))
	if r.Sign() == 0 {
		return q, false
	}
	cmp := r.Lsh(r, 1).Cmp(d)
	var up bool
	switch mode {
	case ToNearestEven:
		up = cmp > 0 || cmp == 0 && q.Bit(0) == 1
	case ToNearestAway:
		up = cmp >= 0
	case ToPositiveInf:
		up = !neg
	case ToNegativeInf:
		up = neg
	}
	if up {
		q.Add(q, bigOne)
	}
	return q, true
}

// refRound returns the decimal128 nearest to (-1)**neg * c * 10**exp according
// to mode, where exp is the preferred exponent of an exact result.
func refRound(t *testing.T, neg bool, c *big.Int, exp int, mode RoundingMode) (Decimal128, Flags) {
	t.Helper()
	if c.Sign() == 0 {
		return refPack(t, neg, c, min(max(exp, MinExp), MaxExp)), 0
	}
	q := bigDigits(c)
	if exp > MaxExp && q+exp-MaxExp <= Precision {
		return refPack(t, neg, new(big.Int).Mul(c, bigPow10(exp-MaxExp)), MaxExp), 0
	}
	// tininess is decided on the result rounded with an unbounded exponent
	e1 := exp + max(q-Precision, 0)
	c1, _ := refDiv(neg, c, e1-exp, mode)
	tiny := bigDigits(c1)+e1 < MinExp+Precision

	e := max(e1, MinExp)
	cr, inexact := refDiv(neg, c, e-exp, mode)
	if bigDigits(cr) > Precision {
		cr.Quo(cr, bigTen)
		e++
	}
	if e > MaxExp {
		if mode == ToZero || mode == ToPositiveInf && neg || mode == ToNegativeInf && !neg {
			return MaxFinite.setSign(neg), Overflow | Inexact
		}
		return Inf(neg), Overflow | Inexact
	}
	var f Flags
	if inexact {
		f = Inexact
		if tiny {
			f |= Underflow
		}
	}
	return refPack(t, neg, cr, e), f
}

// zeroSign returns the sign of an exact zero sum of terms with signs a and b.
func zeroSign(a, b bool, mode RoundingMode) bool {
	if a == b {
		return a
	}
	return mode == ToNegativeInf
}

func signed(neg bool, c *big.Int, n int) *big.Int {
	x := new(big.Int).Mul(c, bigPow10(n))
	if neg {
		x.Neg(x)
	}
	return x
}

func refAdd(t *testing.T, a, b num, mode RoundingMode) (Decimal128, Flags) {
	t.Helper()
	e := min(a.exp, b.exp)
	s := new(big.Int).Add(signed(a.neg, a.c, a.exp-e), signed(b.neg, b.c, b.exp-e))
	if s.Sign() == 0 {
		return refRound(t, zeroSign(a.neg, b.neg, mode), s, e, mode)
	}
	return refRound(t, s.Sign() < 0, s.Abs(s), e, mode)
}

func refMul(t *testing.T, a, b num, mode RoundingMode) (Decimal128, Flags) {
	t.Helper()
	return refRound(t, a.neg != b.neg, new(big.Int).Mul(a.c, b.c), a.exp+b.exp, mode)
}

func refFMA(t *testing.T, a, b, c num, mode RoundingMode) (Decimal128, Flags) {
	t.Helper()
	p := num{neg: a.neg != b.neg, c: new(big.Int).Mul(a.c, b.c), exp: a.exp + b.exp}
	return refAdd(t, p, c, mode)
}

func refQuo(t *testing.T, a, b num, mode RoundingMode) (Decimal128, Flags) {
	t.Helper()
	neg := a.neg != b.neg
	pref := a.exp - b.exp
	if a.c.Sign() == 0 {
		return refRound(t, neg, a.c, pref, mode)
	}
	// enough digits for the quotient to have more than Precision+1 digits
	k := Precision + 2 + bigDigits(b.c)
	q, r := new(big.Int).QuoRem(new(big.Int).Mul(a.c, bigPow10(k)), b.c, new(big.Int))
	e := pref - k
	if r.Sign() != 0 {
		q.Mul(q, bigTen).Add(q, bigOne)
		return refRound(t, neg, q, e-1, mode)
	}
	for e < pref {
		qq, rr := new(big.Int).QuoRem(q, bigTen, new(big.Int))
		if rr.Sign() != 0 {
			break
		}
		q, e = qq, e+1
	}
	return refRound(t, neg, q, e, mode)
}

// expRange is a range of exponents for random operands.
type expRange struct{ lo, hi int }

var (
	nearOne  = expRange{-20, 10}
	nearMin  = expRange{MinExp, MinExp + 40}
	nearMax  = expRange{MaxExp - 40, MaxExp}
	halfMin  = expRange{MinExp/2 - 20, MinExp/2 + 20}
	halfMax  = expRange{MaxExp/2 - 20, MaxExp/2 + 20}
	allModes = []RoundingMode{ToNearestEven, ToNegativeInf, ToPositiveInf, ToZero, ToNearestAway}
)

func rndNum(t *testing.T, r expRange) num {
	n := num{neg: rnd.Intn(2) == 0, exp: r.lo + rnd.Intn(r.hi-r.lo+1)}
	switch k := rnd.Intn(20); {
	case k == 0:
		n.c = new(big.Int)
	case k < 4:
		// short coefficients make exact results likely
		n.c = rndDigits(1 + rnd.Intn(4))
	case k < 8:
		n.c = new(big.Int).Sub(bigPow10(Precision), bigOne)
		n.c.Sub(n.c, big.NewInt(rnd.Int63n(3)))
	default:
		n.c = rndDigits(1 + rnd.Intn(Precision))
	}
	n.d = refPack(t, n.neg, n.c, n.exp)
	return n
}

func requireResult(t *testing.T, wantZ Decimal128, wantF Flags, z Decimal128, f Flags, mode RoundingMode, ops ...num) {
	t.Helper()
	if wantZ != z || wantF != f {
		require.Failf(t, "wrong result", "operands %v mode %s\nwant %s flags %s\ngot  %s flags %s\n%s",
			ops, mode, wantZ, wantF, z, f, spew.Sdump(ops))
	}
}
