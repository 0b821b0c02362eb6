// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimal128 values.

package decimal128

import (
	"encoding/binary"
	"fmt"
)

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// encoding is the 16 bytes IEEE 754-2008 interchange format, most significant
// byte first.
func (x Decimal128) MarshalBinary() ([]byte, error) {
	return x.AppendBinary(make([]byte, 0, 16))
}

// AppendBinary implements the encoding.BinaryAppender interface.
func (x Decimal128) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint64(b, x.hi)
	return binary.BigEndian.AppendUint64(b, x.lo), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Decimal128) UnmarshalBinary(buf []byte) (err error) {
	defer Error.WrapP(&err)
	if len(buf) != 16 {
		return fmt.Errorf("got %d bytes: %w", len(buf), errBitsLen)
	}
	z.hi = binary.BigEndian.Uint64(buf)
	z.lo = binary.BigEndian.Uint64(buf[8:])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The text form
// is the one returned by String.
func (x Decimal128) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. Values
// that do not fit are rounded to nearest, ties to even.
func (z *Decimal128) UnmarshalText(text []byte) error {
	x, _, err := Parse(string(text), ToNearestEven)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into a decimal128.Decimal128: %w", text, err)
	}
	*z = x
	return nil
}
