package command

import (
	"fmt"

	"github.com/db47h/decimal128"
	"github.com/db47h/decimal128/internal/vectors"
	"github.com/spf13/cobra"
)

func newEval(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <operand>...",
		Short: "Evaluates a single operation.",
		Long: "Evaluates add, sub, mul, div or fma on the given operands and prints the result and the raised flags.\n\n" +
			"Operands use the decimal128 text syntax, for example `1.5`, `-2E+10`, `Inf`, `NaN12` or `[3040000000000000,1]`. " +
			"Use `--` before negative operands.",
		Example: "bid128 eval div 2 3\nbid128 eval --mode Zero -- fma 1.1 1.1 -1",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.eval(cmd, args[0], args[1:])
		},
	}
}

func (e *env) eval(cmd *cobra.Command, op string, operands []string) error {
	mode, err := e.mode()
	if err != nil {
		return err
	}
	xs := make([]decimal128.Decimal128, len(operands))
	for i, s := range operands {
		var pf decimal128.Flags
		if xs[i], pf, err = decimal128.Parse(s, mode); err != nil {
			return err
		}
		if pf != 0 {
			e.log.Warn("operand rounded", "operand", s, "value", xs[i], "flags", pf)
		}
	}
	z, f, err := vectors.Eval(op, mode, xs...)
	if err != nil {
		return err
	}
	hi, lo := z.Bits()
	fmt.Fprintf(cmd.OutOrStdout(), "%s [%016x,%016x] %s\n", z, hi, lo, f)
	return nil
}
