// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Decimal128 values.
//
// A Context holds a rounding mode, the sticky exception flags raised by the
// operations performed with it and a set of trapped flags. Operators have the
// form:
//
//	func (c *Context) BinaryOp(x, y decimal128.Decimal128) decimal128.Decimal128
//
// and return the result of decimal128.BinaryOp(x, y, c.Mode()).
//
// A Context catches trapped exceptions: if an operation raises a trapped flag,
// the operation returns its result as usual but further operations with the
// context return NaN until (*Context).Err is called to check for errors.
package context

import (
	"errors"

	"github.com/db47h/decimal128"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by contexts.
var Error = errs.Class("context")

// Sentinel errors for each trappable exception. A *TrapError matches all the
// sentinels of its flags with errors.Is.
var (
	ErrInvalid   = Error.New("invalid operation")
	ErrDivByZero = Error.New("division by zero")
	ErrOverflow  = Error.New("overflow")
	ErrUnderflow = Error.New("underflow")
	ErrInexact   = Error.New("inexact result")
)

var flagErrors = []struct {
	f   decimal128.Flags
	err error
}{
	{decimal128.Invalid, ErrInvalid},
	{decimal128.DivByZero, ErrDivByZero},
	{decimal128.Overflow, ErrOverflow},
	{decimal128.Underflow, ErrUnderflow},
	{decimal128.Inexact, ErrInexact},
}

// A TrapError reports the trapped flags raised by the first failing operation.
type TrapError struct {
	Op    string
	Flags decimal128.Flags // trapped flags only
}

func (e *TrapError) Error() string {
	return e.Op + ": " + e.Flags.String()
}

// Unwrap returns the sentinel errors matching e.Flags.
func (e *TrapError) Unwrap() []error {
	var list []error
	for _, fe := range flagErrors {
		if e.Flags&fe.f != 0 {
			list = append(list, fe.err)
		}
	}
	return list
}

// A Context is a wrapper around Decimal128 operations that facilitates
// management of rounding modes, exception flags and error handling.
//
// The zero value is a context rounding to nearest even with no traps.
// A Context must not be used concurrently.
type Context struct {
	mode  decimal128.RoundingMode
	traps decimal128.Flags
	flags decimal128.Flags
	err   error
}

// New creates a new context with the given rounding mode and traps.
func New(mode decimal128.RoundingMode, traps decimal128.Flags) *Context {
	return new(Context).SetMode(mode).SetTraps(traps)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() decimal128.RoundingMode {
	return c.mode
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode decimal128.RoundingMode) *Context {
	c.mode = mode
	return c
}

// Traps returns the set of flags that stop c.
func (c *Context) Traps() decimal128.Flags {
	return c.traps
}

// SetTraps sets the flags that stop c and returns c.
func (c *Context) SetTraps(traps decimal128.Flags) *Context {
	c.traps = traps
	return c
}

// Flags returns the flags raised since the context was created or since the
// last call to ClearFlags.
func (c *Context) Flags() decimal128.Flags {
	return c.flags
}

// ClearFlags clears the raised flags and returns their previous value.
func (c *Context) ClearFlags() (f decimal128.Flags) {
	f, c.flags = c.flags, 0
	return f
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

func (c *Context) raise(op string, f decimal128.Flags) {
	c.flags |= f
	if t := f & c.traps; t != 0 && c.err == nil {
		c.err = &TrapError{Op: op, Flags: t}
	}
}

// NewInt64 returns x as a Decimal128.
func (c *Context) NewInt64(x int64) decimal128.Decimal128 {
	return decimal128.FromInt64(x)
}

// NewUint64 returns x as a Decimal128.
func (c *Context) NewUint64(x uint64) decimal128.Decimal128 {
	return decimal128.FromUint64(x)
}

// Parse is like decimal128.Parse with c's rounding mode. Syntax errors are
// returned, not recorded in c.
func (c *Context) Parse(s string) (decimal128.Decimal128, error) {
	if c.err != nil {
		return decimal128.NaN(), nil
	}
	z, f, err := decimal128.Parse(s, c.mode)
	if err != nil {
		return z, Error.Wrap(err)
	}
	c.raise("parse", f)
	return z, nil
}

// Add returns the rounded sum x+y.
func (c *Context) Add(x, y decimal128.Decimal128) decimal128.Decimal128 {
	return c.binary("add", decimal128.Add, x, y)
}

// Sub returns the rounded difference x-y.
func (c *Context) Sub(x, y decimal128.Decimal128) decimal128.Decimal128 {
	return c.binary("sub", decimal128.Sub, x, y)
}

// Mul returns the rounded product x×y.
func (c *Context) Mul(x, y decimal128.Decimal128) decimal128.Decimal128 {
	return c.binary("mul", decimal128.Mul, x, y)
}

// Quo returns the rounded quotient x/y.
func (c *Context) Quo(x, y decimal128.Decimal128) decimal128.Decimal128 {
	return c.binary("quo", decimal128.Quo, x, y)
}

// FMA returns x×y+u, computed with only one rounding.
func (c *Context) FMA(x, y, u decimal128.Decimal128) decimal128.Decimal128 {
	if c.err != nil {
		return decimal128.NaN()
	}
	z, f := decimal128.FMA(x, y, u, c.mode)
	c.raise("fma", f)
	return z
}

func (c *Context) binary(op string, fn func(x, y decimal128.Decimal128, m decimal128.RoundingMode) (decimal128.Decimal128, decimal128.Flags), x, y decimal128.Decimal128) decimal128.Decimal128 {
	if c.err != nil {
		return decimal128.NaN()
	}
	z, f := fn(x, y, c.mode)
	c.raise(op, f)
	return z
}

// Neg returns x with its sign negated. It never raises flags.
func (c *Context) Neg(x decimal128.Decimal128) decimal128.Decimal128 {
	if c.err != nil {
		return decimal128.NaN()
	}
	return x.Neg()
}

// Abs returns |x|. It never raises flags.
func (c *Context) Abs(x decimal128.Decimal128) decimal128.Decimal128 {
	if c.err != nil {
		return decimal128.NaN()
	}
	return x.Abs()
}

// IsTrap reports whether err is a *TrapError.
func IsTrap(err error) bool {
	var te *TrapError
	return errors.As(err, &te)
}
