package context

import (
	"errors"
	"testing"

	"github.com/db47h/decimal128"
	"github.com/stretchr/testify/require"
)

func TestFlagsAccumulate(t *testing.T) {
	c := New(decimal128.ToNearestEven, 0)
	one, three := c.NewInt64(1), c.NewInt64(3)

	z := c.Quo(one, three)
	require.Equal(t, "+3333333333333333333333333333333333E-34", z.String())
	require.Equal(t, decimal128.Inexact, c.Flags())

	z = c.Quo(one, decimal128.Zero)
	require.True(t, z.IsInf())
	require.Equal(t, decimal128.Inexact|decimal128.DivByZero, c.Flags())

	z = c.Sub(z, z)
	require.True(t, z.IsNaN())
	require.Equal(t, decimal128.Inexact|decimal128.DivByZero|decimal128.Invalid, c.ClearFlags())
	require.Zero(t, c.Flags())
	require.NoError(t, c.Err())
}

func TestMode(t *testing.T) {
	c := new(Context)
	require.Equal(t, decimal128.ToNearestEven, c.Mode())
	two, three := c.NewInt64(2), c.NewInt64(3)
	require.Equal(t, "+6666666666666666666666666666666667E-34", c.Quo(two, three).String())
	c.SetMode(decimal128.ToZero)
	require.Equal(t, "+6666666666666666666666666666666666E-34", c.Quo(two, three).String())
	require.Equal(t, "-6666666666666666666666666666666666E-34", c.Quo(c.Neg(two), three).String())
	require.Equal(t, "+2E+0", c.Abs(c.Neg(two)).String())
}

func TestTraps(t *testing.T) {
	c := New(decimal128.ToNearestEven, decimal128.Invalid|decimal128.DivByZero)
	require.Equal(t, decimal128.Invalid|decimal128.DivByZero, c.Traps())

	x := c.Add(c.NewInt64(1), c.NewUint64(2))
	require.Equal(t, "+3E+0", x.String())
	require.NoError(t, c.Err())

	// the trapping operation still returns its result
	z := c.Quo(x, decimal128.Zero)
	require.Equal(t, "+Inf", z.String())
	// later operations are no-ops
	require.True(t, c.Add(x, x).IsNaN())
	require.True(t, c.Mul(x, x).IsNaN())
	require.True(t, c.FMA(x, x, x).IsNaN())
	require.True(t, c.Neg(x).IsNaN())
	v, err := c.Parse("1")
	require.NoError(t, err)
	require.True(t, v.IsNaN())

	err = c.Err()
	require.Error(t, err)
	require.True(t, IsTrap(err))
	require.ErrorIs(t, err, ErrDivByZero)
	require.False(t, errors.Is(err, ErrInvalid))
	var te *TrapError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "quo", te.Op)
	require.Equal(t, decimal128.DivByZero, te.Flags)
	require.Equal(t, "quo: divbyzero", err.Error())

	// Err clears the error state
	require.NoError(t, c.Err())
	require.Equal(t, "+6E+0", c.Mul(x, c.NewInt64(2)).String())

	// only trapped flags are reported
	c.SetTraps(decimal128.Overflow | decimal128.Inexact)
	c.Mul(decimal128.MaxFinite, x)
	err = c.Err()
	require.ErrorIs(t, err, ErrOverflow)
	require.ErrorIs(t, err, ErrInexact)
	require.Equal(t, "mul: overflow|inexact", err.Error())
	require.True(t, Error.Has(ErrOverflow))
}

func TestParse(t *testing.T) {
	c := New(decimal128.ToPositiveInf, decimal128.Underflow)
	x, err := c.Parse("12.5")
	require.NoError(t, err)
	require.Equal(t, "+125E-1", x.String())

	_, err = c.Parse("1.2.3")
	require.Error(t, err)
	require.True(t, Error.Has(err))
	require.True(t, decimal128.Error.Has(err))
	require.False(t, IsTrap(err))
	require.NoError(t, c.Err())

	x, err = c.Parse("1E-7000")
	require.NoError(t, err)
	require.Equal(t, "+1E-6176", x.String())
	require.ErrorIs(t, c.Err(), ErrUnderflow)
	require.Equal(t, decimal128.Underflow|decimal128.Inexact, c.Flags())
}
