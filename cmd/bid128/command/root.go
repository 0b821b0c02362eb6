// Package command implements the bid128 command line.
package command

import (
	"log/slog"
	"strings"

	"github.com/db47h/decimal128"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the class of command line errors.
var Error = errs.Class("bid128")

// env holds the configuration shared by all subcommands.
type env struct {
	v   *viper.Viper
	log *slog.Logger
}

// mode returns the configured rounding mode.
func (e *env) mode() (decimal128.RoundingMode, error) {
	m, err := decimal128.ParseRoundingMode(e.v.GetString("mode"))
	return m, Error.Wrap(err)
}

// NewRoot returns the bid128 root command. Flags may also be set from
// BID128_* environment variables, such as BID128_LOG_LEVEL, or from a
// configuration file.
func NewRoot() *cobra.Command {
	e := &env{v: viper.New()}
	root := &cobra.Command{
		Use:   "bid128",
		Short: "bid128 evaluates IEEE 754-2008 decimal128 operations.",
		Long: "`bid128` computes correctly rounded decimal128 sums, products, fused multiply-adds and quotients.\n\n" +
			"It evaluates single operations and checks files of test vectors, possibly compressed with gzip, zstd or lz4.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}
	fs := root.PersistentFlags()
	fs.String("config", "", "Path to a configuration file (YAML, TOML or JSON).")
	fs.String("log-level", "info", "Minimum level of log messages: debug, info, warn or error.")
	fs.Bool("no-color", false, "Disable colored log output.")
	fs.StringP("mode", "m", decimal128.ToNearestEven.String(), "Rounding mode: NearestEven, NegativeInf, PositiveInf, Zero, NearestAway or 0-4.")

	root.AddCommand(newEval(e), newRun(e))
	return root
}

// load binds the flags of cmd, the environment and the configuration file to
// e.v and sets up the logger.
func (e *env) load(cmd *cobra.Command) (err error) {
	defer Error.WrapP(&err)

	v := e.v
	v.SetEnvPrefix("BID128")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return err
	}
	e.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:   level,
		NoColor: v.GetBool("no-color"),
	}))
	if _, err := e.mode(); err != nil {
		return err
	}
	e.log.Debug("configuration loaded", "mode", v.GetString("mode"), "config", v.ConfigFileUsed())
	return nil
}
