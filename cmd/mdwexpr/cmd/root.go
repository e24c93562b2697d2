package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/mdwexpr/core/config"
	mdwerror "github.com/msto63/mdwexpr/core/error"
	mdwlog "github.com/msto63/mdwexpr/core/log"
	"github.com/msto63/mdwexpr/expr"
)

// envPrefix is the prefix of environment variables overriding config keys
const envPrefix = "MDWEXPR"

var (
	cfgFile   string
	verbose   bool
	logFormat string

	engineOptions expr.Options
	logger        *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mdwexpr",
	Short: "Expression parser with positional diagnostics",
	Long: `mdwexpr parses arithmetic, comparison, logical, array and
function-call expressions and prints their syntax tree.

Commands:
  parse    - parse an expression from the arguments or stdin
  watch    - re-parse a file whenever it changes
  version  - print version information

Configuration is read from a TOML or YAML file (--config) and can be
overridden with MDWEXPR_* environment variables, e.g. MDWEXPR_PARSER_MAX_DEPTH.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports errors not already shown
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var shown *reportedError
		if !errors.As(err, &shown) {
			printError(rootCmd.ErrOrStderr(), err)
		}
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Code().ExitCode()
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json or console (default from config)")
}

// setup loads the configuration and prepares logger and engine options
func setup(cmd *cobra.Command, args []string) error {
	cfg := mdwconfig.Empty().WithEnvPrefix(envPrefix)
	if cfgFile != "" {
		loaded, err := mdwconfig.LoadWithOptions(cfgFile, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: envPrefix,
		})
		if err != nil {
			return err
		}
		cfg = loaded
	}

	opts, err := expr.OptionsFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	switch {
	case verbose:
		opts.Logger = opts.Logger.WithLevel(mdwlog.LevelDebug)
	case !cfg.Has(expr.KeyLogLevel):
		opts.Logger = opts.Logger.WithLevel(mdwlog.LevelWarn)
	}

	if logFormat != "" {
		format, err := mdwlog.ParseFormat(logFormat)
		if err != nil {
			return mdwerror.Wrap(err, "invalid --log-format").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.setup")
		}
		opts.Logger = opts.Logger.WithFormat(format)
	}

	engineOptions = opts
	logger = opts.Logger.WithField("command", cmd.Name())
	logger.Debug("Configuration loaded", mdwlog.Fields{
		"config":   cfg.FilePath(),
		"format":   cfg.Format().String(),
		"maxDepth": opts.MaxDepth,
	})
	return nil
}

// newEngine creates an engine from the loaded options. partial allows
// input after the expression.
func newEngine(partial bool) (*expr.Engine, error) {
	opts := engineOptions
	if partial {
		opts.RequireFullInput = false
	}
	return expr.New(opts)
}

// reportedError marks an error whose diagnostic was already printed
type reportedError struct {
	err error
}

func (r *reportedError) Error() string { return r.err.Error() }
func (r *reportedError) Unwrap() error { return r.err }

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, errorStyle.Render("error:")+" "+err.Error())
}
