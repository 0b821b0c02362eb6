// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal128

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by text and binary decoding.
var Error = errs.Class("decimal128")

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
	errSyntax   = errors.New("invalid syntax")
	errBitsLen  = errors.New("binary encoding must be 16 bytes")
)
