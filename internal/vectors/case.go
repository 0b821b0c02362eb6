// Package vectors reads and runs decimal128 test-vector files.
//
// A vector file holds one operation per line:
//
//	<op> <mode> <operand>... <expected> [<flags>]
//
// where op is one of add, sub, mul, div (or quo) and fma, optionally prefixed
// with "bid128_", mode is a rounding mode as accepted by
// decimal128.ParseRoundingMode, operands and the expected result use any
// syntax accepted by decimal128.Parse and flags are the expected exception
// flags in hexadecimal. Blank lines and lines starting with '#' are ignored.
// Files may be compressed with gzip, zstd or lz4.
package vectors

import (
	"strconv"
	"strings"

	"github.com/db47h/decimal128"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("vectors")

type binaryOp func(x, y decimal128.Decimal128, m decimal128.RoundingMode) (decimal128.Decimal128, decimal128.Flags)

var binaryOps = map[string]binaryOp{
	"add": decimal128.Add,
	"sub": decimal128.Sub,
	"mul": decimal128.Mul,
	"div": decimal128.Quo,
	"quo": decimal128.Quo,
}

// Arity returns the number of operands of op, or 0 if op is unknown.
func Arity(op string) int {
	op = strings.TrimPrefix(op, "bid128_")
	if _, ok := binaryOps[op]; ok {
		return 2
	}
	if op == "fma" {
		return 3
	}
	return 0
}

// Eval returns op applied to args rounded according to mode.
func Eval(op string, mode decimal128.RoundingMode, args ...decimal128.Decimal128) (decimal128.Decimal128, decimal128.Flags, error) {
	n := Arity(op)
	if n == 0 {
		return decimal128.NaN(), 0, Error.New("unknown operation %q", op)
	}
	if len(args) != n {
		return decimal128.NaN(), 0, Error.New("%s: got %d operands, want %d", op, len(args), n)
	}
	if n == 3 {
		z, f := decimal128.FMA(args[0], args[1], args[2], mode)
		return z, f, nil
	}
	z, f := binaryOps[strings.TrimPrefix(op, "bid128_")](args[0], args[1], mode)
	return z, f, nil
}

// A Case is a single test vector.
type Case struct {
	Line     int
	Op       string
	Mode     decimal128.RoundingMode
	Args     []decimal128.Decimal128
	Want     decimal128.Decimal128
	Flags    decimal128.Flags
	HasFlags bool // Flags must be checked
}

// ParseCase parses the text of a test vector.
func ParseCase(line string) (c Case, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return c, Error.New("missing operation or rounding mode")
	}
	c.Op = fields[0]
	n := Arity(c.Op)
	if n == 0 {
		return c, Error.New("unknown operation %q", c.Op)
	}
	if c.Mode, err = decimal128.ParseRoundingMode(fields[1]); err != nil {
		return c, err
	}
	fields = fields[2:]
	switch len(fields) {
	case n + 1:
	case n + 2:
		f, err := strconv.ParseUint(fields[n+1], 16, 8)
		if err != nil {
			return c, Error.New("bad flags %q", fields[n+1])
		}
		c.Flags, c.HasFlags = decimal128.Flags(f), true
	default:
		return c, Error.New("%s: got %d fields after the rounding mode, want %d or %d", c.Op, len(fields), n+1, n+2)
	}
	// operands are read with the rounding mode of the case
	c.Args = make([]decimal128.Decimal128, n)
	for i := range c.Args {
		if c.Args[i], _, err = decimal128.Parse(fields[i], c.Mode); err != nil {
			return c, err
		}
	}
	c.Want, _, err = decimal128.Parse(fields[n], c.Mode)
	return c, err
}

// Run evaluates c and reports whether it matches the expected result. NaN
// results match when they agree in kind, sign and payload.
func (c *Case) Run() (got decimal128.Decimal128, f decimal128.Flags, ok bool) {
	got, f, err := Eval(c.Op, c.Mode, c.Args...)
	if err != nil {
		return got, f, false
	}
	if c.HasFlags && f != c.Flags {
		return got, f, false
	}
	if got.IsNaN() && c.Want.IsNaN() {
		return got, f, got.String() == c.Want.String()
	}
	return got, f, got == c.Want
}
