// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversions.

package decimal128

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDigits is the number of significant digits kept by Parse. Further
// digits only contribute a sticky digit.
const parseDigits = 2 * Precision

// maxParseExp bounds parsed exponents so that exponent arithmetic cannot
// overflow. Anything beyond overflows or underflows anyway.
const maxParseExp = 100_000_000

// Parse returns the Decimal128 nearest to the number in s, rounded according
// to mode, and the flags raised by rounding. The number must be of the form:
//
//	number   = [ sign ] ( float | inf | nan ) | bits .
//	sign     = "+" | "-" .
//	float    = mantissa [ exponent ] .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//	inf      = "inf" | "infinity" .
//	nan      = ( "nan" | "snan" ) [ digits ] .
//	bits     = "[" hex "," hex "]" | "[" hex "]" .
//
// Keywords are case insensitive. The optional digits after nan are the NaN
// payload. The bits form gives the encoding in hexadecimal, either as two 64
// bits words, high word first, or as a single 128 bits number.
func Parse(s string, mode RoundingMode) (z Decimal128, f Flags, err error) {
	defer Error.WrapP(&err)

	if strings.HasPrefix(s, "[") {
		z, err = parseBits(s)
		return z, 0, err
	}
	neg, body := scanSign(s)
	if z, ok := parseSpecial(body); ok {
		return z.setSign(neg), 0, nil
	}
	v, err := scanFloat(body)
	if err != nil {
		return defaultNaN, 0, fmt.Errorf("%q: %w", s, err)
	}
	v.neg = neg
	z, f = v.finalize(mode)
	return z, f, nil
}

// MustParse is like Parse with mode ToNearestEven but panics if s cannot be
// parsed. It simplifies safe initialization of global variables holding
// constants.
func MustParse(s string) Decimal128 {
	z, _, err := Parse(s, ToNearestEven)
	if err != nil {
		panic(err)
	}
	return z
}

func scanSign(s string) (neg bool, rest string) {
	if s != "" {
		switch s[0] {
		case '-':
			return true, s[1:]
		case '+':
			return false, s[1:]
		}
	}
	return false, s
}

// parseSpecial parses infinities and NaNs.
func parseSpecial(s string) (z Decimal128, ok bool) {
	if strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity") {
		return Inf(false), true
	}
	hi := uint64(nanMask)
	switch {
	case len(s) >= 4 && strings.EqualFold(s[:4], "snan"):
		hi, s = snanMask, s[4:]
	case len(s) >= 3 && strings.EqualFold(s[:3], "nan"):
		s = s[3:]
	default:
		return z, false
	}
	var payload uint128
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return z, false
		}
		if mulAddVWW(payload[:], payload[:], 10, uint64(ch-'0')) != 0 || cmpVV(payload[:], maxPayload[:]) > 0 {
			// non-canonical payloads read as 0
			payload = uint128{}
			break
		}
	}
	return Decimal128{hi: hi | payload[1], lo: payload[0]}, true
}

// scanFloat scans an unsigned decimal floating point number and returns its
// exact value, up to a sticky digit standing for any digits after the
// first parseDigits significant ones.
func scanFloat(s string) (v wide, err error) {
	var (
		c              uint256
		nd             int
		exp            int
		dot, anyDigits bool
		sticky         bool
		i              int
	)
loop:
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '.':
			if dot {
				return v, errSyntax
			}
			dot = true
		case '0' <= ch && ch <= '9':
			anyDigits = true
			switch {
			case nd == 0 && ch == '0':
				// leading zero
			case nd < parseDigits:
				mulAddVWW(c[:], c[:], 10, uint64(ch-'0'))
				nd++
			default:
				sticky = sticky || ch != '0'
				if !dot {
					exp++
				}
				continue
			}
			if dot {
				exp--
			}
		default:
			break loop
		}
	}
	if !anyDigits {
		return v, errNoDigits
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		e, err := scanExponent(s[i+1:])
		if err != nil {
			return v, err
		}
		exp += e
		i = len(s)
	}
	if i != len(s) {
		return v, errSyntax
	}
	if sticky {
		mulAddVWW(c[:], c[:], 10, 1)
		exp--
	}
	return newWide(false, c[:], exp), nil
}

func scanExponent(s string) (int, error) {
	neg, s := scanSign(s)
	if s == "" {
		return 0, errNoDigits
	}
	e := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, errSyntax
		}
		if e < maxParseExp {
			e = e*10 + int(ch-'0')
		}
	}
	if neg {
		e = -e
	}
	return e, nil
}

func parseBits(s string) (Decimal128, error) {
	body, ok := strings.CutSuffix(s[1:], "]")
	if !ok {
		return defaultNaN, fmt.Errorf("%q: %w", s, errSyntax)
	}
	hs, ls, pair := strings.Cut(body, ",")
	if !pair {
		// single 128 bits number
		if len(body) <= 16 {
			hs, ls = "0", body
		} else {
			hs, ls = body[:len(body)-16], body[len(body)-16:]
		}
	}
	hi, err := strconv.ParseUint(strings.TrimSpace(hs), 16, 64)
	if err != nil {
		return defaultNaN, err
	}
	lo, err := strconv.ParseUint(strings.TrimSpace(ls), 16, 64)
	if err != nil {
		return defaultNaN, err
	}
	return Decimal128{hi: hi, lo: lo}, nil
}

// String formats x like "-1234E-2", "+Inf" or "+NaN". The coefficient is
// printed as an integer followed by the exponent; the result parses back
// to the same encoding for canonical values.
func (x Decimal128) String() string {
	return string(x.Append(make([]byte, 0, 48)))
}

// Append appends the string form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x Decimal128) Append(buf []byte) []byte {
	op := x.unpack()
	if op.neg {
		buf = append(buf, '-')
	} else {
		buf = append(buf, '+')
	}
	switch op.class {
	case ClassInf:
		return append(buf, "Inf"...)
	case ClassQNaN, ClassSNaN:
		if op.class == ClassSNaN {
			buf = append(buf, 'S')
		}
		buf = append(buf, "NaN"...)
		if !isZero(op.coeff[:]) {
			buf = appendCoeff(buf, op.coeff)
		}
		return buf
	}
	buf = appendCoeff(buf, op.coeff)
	buf = append(buf, 'E')
	if op.exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(op.exp), 10)
}

func appendCoeff(buf []byte, c uint128) []byte {
	if c[1] == 0 {
		return strconv.AppendUint(buf, c[0], 10)
	}
	var q uint128
	r := divVW(q[:], c[:], wordsPow10)
	buf = strconv.AppendUint(buf, q[0], 10)
	var lo [wordsPow10Digits]byte
	for i := len(lo) - 1; i >= 0; i-- {
		lo[i] = byte('0' + r%10)
		r /= 10
	}
	return append(buf, lo[:]...)
}

// FromInt64 returns x as a Decimal128 with exponent 0. The conversion is
// exact.
func FromInt64(x int64) Decimal128 {
	if x < 0 {
		return pack(true, uint128{uint64(-x)}, 0)
	}
	return pack(false, uint128{uint64(x)}, 0)
}

// FromUint64 returns x as a Decimal128 with exponent 0. The conversion is
// exact.
func FromUint64(x uint64) Decimal128 {
	return pack(false, uint128{x}, 0)
}
