package context_test

import (
	"errors"
	"fmt"

	"github.com/db47h/decimal128"
	"github.com/db47h/decimal128/context"
)

// average returns the mean of xs, using ctx's rounding mode. It fails when xs
// is empty since 0/0 is an invalid operation, so we need to check errors.
func average(ctx *context.Context, xs ...decimal128.Decimal128) (decimal128.Decimal128, error) {
	sum := decimal128.Zero
	for _, x := range xs {
		sum = ctx.Add(sum, x)
	}
	avg := ctx.Quo(sum, ctx.NewInt64(int64(len(xs))))
	if err := ctx.Err(); err != nil {
		return avg, fmt.Errorf("error computing average: %w", err)
	}
	return avg, nil
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(decimal128.ToNearestEven, decimal128.Invalid|decimal128.DivByZero)
	prices := []decimal128.Decimal128{
		decimal128.MustParse("1.5"),
		decimal128.MustParse("2.25"),
		decimal128.MustParse("3"),
	}
	avg, err := average(ctx, prices...)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("average of %v: %v, flags: %v\n", prices, avg, ctx.Flags())

	// obviously, average cannot handle an empty list
	_, err = average(ctx)
	fmt.Println(err, errors.Is(err, context.ErrInvalid))
	//
	// Output:
	// average of [+15E-1 +225E-2 +3E+0]: +225E-2, flags: none
	// error computing average: quo: invalid true
}
