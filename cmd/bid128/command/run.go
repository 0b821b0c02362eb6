package command

import (
	"fmt"

	"github.com/db47h/decimal128/internal/vectors"
	"github.com/spf13/cobra"
)

func newRun(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Runs test-vector files.",
		Long: "Runs every operation of the given test-vector files and reports mismatches.\n\n" +
			"Each line reads `<op> <mode> <operand>... <expected> [<flags>]`. Files ending in .gz, .zst or .lz4 are decompressed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd, args)
		},
	}
	cmd.Flags().IntP("workers", "j", 0, "Number of files processed concurrently, 0 for one per CPU.")
	return cmd
}

func (e *env) run(cmd *cobra.Command, files []string) error {
	r := vectors.Runner{Logger: e.log, Workers: e.v.GetInt("workers")}
	reports, err := r.Run(cmd.Context(), files...)
	if err != nil {
		return Error.Wrap(err)
	}
	out := cmd.OutOrStdout()
	failed := 0
	for _, rep := range reports {
		for _, f := range rep.Failures {
			fmt.Fprintf(out, "%s: %s\n", rep.File, f)
		}
		fmt.Fprintf(out, "%s: %d/%d passed\n", rep.File, rep.Passed(), rep.Total)
		failed += len(rep.Failures)
	}
	if failed > 0 {
		return Error.New("%d failed cases", failed)
	}
	return nil
}
