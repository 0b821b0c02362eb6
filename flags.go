// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import (
	"strconv"
	"strings"
)

// RoundingMode determines how a result is rounded to 34 digits.
//
// The numeric values follow the Intel decimal floating point library so that
// vector files written for it can be used as is.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
	ToZero                            // == IEEE 754-2008 roundTowardZero
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
)

//go:generate stringer -type=RoundingMode

// ParseRoundingMode returns the rounding mode named s. It accepts the
// constant names, with or without the "To" prefix and in any case, as well as
// the numeric values "0" to "4".
func ParseRoundingMode(s string) (m RoundingMode, err error) {
	n := RoundingMode(len(_RoundingMode_index) - 1)
	if len(s) == 1 && s[0] >= '0' && s[0] < '0'+byte(n) {
		return RoundingMode(s[0] - '0'), nil
	}
	for m = 0; m < n; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[2:]) {
			return m, nil
		}
	}
	return 0, Error.New("unknown rounding mode %q", s)
}

// Flags is a set of IEEE 754-2008 exception flags. Operations return the
// flags they raised; callers accumulate them with |=.
type Flags uint8

// Exception flags. The values match the Intel decimal floating point library.
const (
	Invalid   Flags = 1 << iota // invalid operation, the result is NaN
	Denormal                    // reserved, never raised
	DivByZero                   // exact infinite result from finite operands
	Overflow                    // result too large, rounded to Inf or MaxFinite
	Underflow                   // tiny and inexact result
	Inexact                     // result was rounded
)

var flagNames = [...]string{
	"invalid",
	"denormal",
	"divbyzero",
	"overflow",
	"underflow",
	"inexact",
}

// String returns the set flags separated by "|", or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, n := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(n)
	}
	if rest := f &^ (1<<len(flagNames) - 1); rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(rest), 16))
	}
	return sb.String()
}
