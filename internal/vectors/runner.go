package vectors

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/db47h/decimal128"
	"golang.org/x/sync/errgroup"
)

// A Failure is a case whose result does not match.
type Failure struct {
	Case  Case
	Got   decimal128.Decimal128
	Flags decimal128.Flags
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d: %s %s %v: got %s flags %02x, want %s flags %02x",
		f.Case.Line, f.Case.Op, f.Case.Mode, f.Case.Args, f.Got, uint8(f.Flags), f.Case.Want, uint8(f.Case.Flags))
}

// A Report sums up the run of a vector file.
type Report struct {
	File     string
	Total    int
	Failures []Failure
}

// Passed returns the number of matching cases.
func (r *Report) Passed() int { return r.Total - len(r.Failures) }

// A Runner runs vector files concurrently.
type Runner struct {
	// Logger receives a summary per file and, at debug level, every
	// failure. Nil means slog.Default().
	Logger *slog.Logger
	// Workers is the number of files processed at once. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int
}

// Check runs cases and returns the report for them.
func Check(file string, cases []Case) Report {
	rep := Report{File: file, Total: len(cases)}
	for i := range cases {
		c := &cases[i]
		if got, f, ok := c.Run(); !ok {
			rep.Failures = append(rep.Failures, Failure{Case: *c, Got: got, Flags: f})
		}
	}
	return rep
}

// Run runs the named files and returns their reports in the same order. It
// stops at the first file that cannot be read or when ctx is done.
func (r *Runner) Run(ctx context.Context, files ...string) ([]Report, error) {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	reports := make([]Report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cases, err := ReadFile(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			rep := Check(name, cases)
			for _, f := range rep.Failures {
				log.Debug("mismatch", "file", name, "failure", f.String())
			}
			log.Info("vector file done", "file", name, "total", rep.Total, "passed", rep.Passed())
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
