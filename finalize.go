// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

// A wide value is an exact intermediate result of up to 76 digits.
type wide struct {
	neg   bool
	coeff uint256
	q     int // digits of coeff, 0 for zero
	exp   int
}

func newWide(neg bool, c []uint64, exp int) wide {
	w := wide{neg: neg, exp: exp}
	copy(w.coeff[:], c)
	w.q = digits(w.coeff[:])
	return w
}

// A roundStage is a state of the finalization state machine.
type roundStage int

const (
	// Round to Precision digits with an unbounded exponent. This is the
	// final result unless its exponent is below MinExp, which also makes
	// the result tiny.
	stageFirstPass roundStage = iota
	// Round the exact value again at MinExp.
	stageRetrySubnormal
)

// A rounder carries the state of finalization between passes.
type rounder struct {
	stage roundStage
	tiny  bool // the first pass result is below the normal range
}

// finalize rounds the exact value v to a Decimal128 and returns the raised
// flags. Exact results keep the exponent of v when it is representable and
// are otherwise moved to the nearest representable exponent.
func (v *wide) finalize(mode RoundingMode) (Decimal128, Flags) {
	if v.q == 0 {
		return pack(v.neg, uint128{}, clampExp(v.exp)), 0
	}
	if v.q <= Precision {
		switch {
		case v.exp > MaxExp:
			if pad := v.exp - MaxExp; v.q+pad <= Precision {
				mulPow10(v.coeff[:], pad)
				return pack(v.neg, uint128(v.coeff[:2]), MaxExp), 0
			}
			return overflowResult(v.neg, mode), Overflow | Inexact
		case v.exp >= MinExp:
			return pack(v.neg, uint128(v.coeff[:2]), v.exp), 0
		}
	}
	var r rounder
	if v.q <= Precision {
		r.stage = stageRetrySubnormal
		r.tiny = true
	}
	for {
		switch r.stage {
		case stageFirstPass:
			x := v.q - Precision
			res := roundAt(v.coeff[:], v.q, x)
			res.correct(v.neg, mode, Precision)
			exp := v.exp + x
			if res.carry {
				exp++
			}
			if exp >= MinExp {
				return v.result(res, exp, mode)
			}
			r.tiny = true
			r.stage = stageRetrySubnormal
		case stageRetrySubnormal:
			x := MinExp - v.exp
			res := roundAt(v.coeff[:], v.q, x)
			res.correct(v.neg, mode, v.q-x)
			if res.carry {
				// 10**n at MinExp
				res.coeff = pow10Tab[v.q-x]
			}
			z, f := v.result(res, MinExp, mode)
			if f&Inexact != 0 && r.tiny {
				f |= Underflow
			}
			return z, f
		}
	}
}

// result packs the rounded coefficient of r at exponent exp, or the overflow
// result if exp is too large.
func (v *wide) result(r roundResult, exp int, mode RoundingMode) (Decimal128, Flags) {
	var f Flags
	if r.ind.inexact() {
		f = Inexact
	}
	if exp > MaxExp {
		return overflowResult(v.neg, mode), Overflow | Inexact
	}
	return pack(v.neg, uint128(r.coeff[:2]), exp), f
}

func clampExp(exp int) int {
	return min(max(exp, MinExp), MaxExp)
}
