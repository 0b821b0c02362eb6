// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal128 implements IEEE 754-2008 decimal128 floating-point
arithmetic in the binary integer decimal (BID) encoding.

A Decimal128 holds a sign, a coefficient of up to 34 decimal digits and an
exponent in [MinExp, MaxExp], or one of the special values ±Inf, quiet NaN
and signaling NaN. The in-memory layout is the 128 bits interchange encoding,
so values can be exchanged bit for bit with other IEEE 754-2008
implementations:

	x := decimal128.MustParse("1.10")  // +110E-2
	hi, lo := x.Bits()                 // 0x303c000000000000, 0x6e

Arithmetic operations are plain functions of the form

	func Op(x, y Decimal128, mode RoundingMode) (Decimal128, Flags)

They return the correctly rounded result and the exception flags raised by
the operation. Flags are sticky by convention: callers accumulate them with

	z, f := decimal128.Add(x, y, decimal128.ToNearestEven)
	flags |= f

The context sub-package wraps this pattern with a rounding mode, a flag
accumulator and traps that turn exceptions into errors.

Results follow IEEE 754-2008: exact results use the preferred exponent of the
operation (the smaller of the operand exponents for additions, the sum of the
exponents for multiplications and their difference for divisions), while
inexact results use the smallest exponent that fits 34 digits. Tininess is
detected after rounding.

Arithmetic operations do not panic and all functions are safe for concurrent
use.
*/
package decimal128
