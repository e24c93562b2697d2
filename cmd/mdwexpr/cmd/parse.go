package cmd

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwexpr/core/error"
	mdwlog "github.com/msto63/mdwexpr/core/log"
	"github.com/msto63/mdwexpr/expr"
	mdwast "github.com/msto63/mdwexpr/expr/ast"
)

// outputFlags holds the rendering flags of one command
type outputFlags struct {
	compact bool
	spans   bool
	partial bool
}

var parseFlags outputFlags

// register binds the flags to c
func (f *outputFlags) register(c *cobra.Command) {
	c.Flags().BoolVarP(&f.compact, "compact", "c", false, "print the tree on a single line")
	c.Flags().BoolVarP(&f.spans, "spans", "s", false, "annotate nodes with byte spans")
	c.Flags().BoolVarP(&f.partial, "partial", "p", false, "accept input after the expression")
}

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse an expression and print its syntax tree",
	Long: `Parse an expression given as argument, or read it from stdin when no
argument is given, and print the syntax tree.

Examples:
  mdwexpr parse "1 + 2 * 3"
  mdwexpr parse --compact --spans "f(x, [1, 2]) >= 3"
  echo "a <= b" | mdwexpr parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseFlags.register(parseCmd)

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	engine, err := newEngine(parseFlags.partial)
	if err != nil {
		return err
	}

	result, err := engine.Parse(source)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderDiagnostic(source, err))
		return &reportedError{err: err}
	}

	fmt.Fprint(cmd.OutOrStdout(), renderResult(result, parseFlags))

	if !result.Complete() {
		logger.Debug("Input left after expression", mdwlog.Fields{"end": result.End})
		fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render("note:")+
			fmt.Sprintf(" stopped at offset %d, remaining input %q", result.End, result.Remaining()))
	}
	return nil
}

// readSource takes the expression from args or, without args, from in
func readSource(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read expression from stdin").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.readSource")
	}
	if !utf8.Valid(data) {
		return "", mdwerror.New("input is not valid UTF-8").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.readSource")
	}
	return string(data), nil
}

func renderResult(result *expr.Result, flags outputFlags) string {
	out := result.Render(mdwast.FormatOptions{Pretty: !flags.compact, Spans: flags.spans})
	if flags.compact {
		out += "\n"
	}
	return out
}
