package cmd

import (
	"fmt"
	"io"
	"os"

	exp "github.com/cwbudde/go-exp"
	"github.com/cwbudde/go-exp/internal/diag"
	"github.com/spf13/cobra"
)

var (
	runExpr             string
	runEnvFile          string
	runMaxSteps         int
	runMaxDepth         int
	runMaxArrayElements int
	runUndefinedIdents  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate an expression from a file, stdin or the command line",
	Long: `Evaluate a single expression and print its value.

Examples:
  # Evaluate an inline expression
  exp run -e "1 + 2 * 3"

  # Evaluate a file against an environment
  exp run --env env.json pricing.exp

  # Tighten the budgets
  exp run --max-steps 100 -e "std.clamp(x, 0, 10)" --env env.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpression,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runExpr, "eval", "e", "", "evaluate an inline expression instead of reading from file")
	runCmd.Flags().StringVar(&runEnvFile, "env", "", "environment file (.json, .yaml or .yml)")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", exp.DefaultMaxSteps, "step budget")
	runCmd.Flags().IntVar(&runMaxDepth, "max-depth", exp.DefaultMaxDepth, "recursion depth budget")
	runCmd.Flags().IntVar(&runMaxArrayElements, "max-array-elements", exp.DefaultMaxArrayElements, "array literal element budget")
	runCmd.Flags().BoolVar(&runUndefinedIdents, "undefined-identifiers", false, "unknown identifiers evaluate to undefined instead of failing")
}

func runExpression(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args, runExpr)
	if err != nil {
		return err
	}

	opts, err := evalOptions()
	if err != nil {
		return err
	}

	val, err := exp.Evaluate(input, opts...)
	if err != nil {
		return renderError(input, filename, err)
	}
	fmt.Println(val.String())
	return nil
}

// evalOptions assembles the evaluation options shared by run and repl.
func evalOptions() ([]exp.Option, error) {
	opts := []exp.Option{
		exp.WithMaxSteps(runMaxSteps),
		exp.WithMaxDepth(runMaxDepth),
		exp.WithMaxArrayElements(runMaxArrayElements),
	}
	if runUndefinedIdents {
		opts = append(opts, exp.WithUndefinedIdentifiers())
	}
	if runEnvFile != "" {
		env, err := loadEnvFile(runEnvFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, exp.WithEnv(env))
	}
	return opts, nil
}

// readInput resolves the expression source: an inline -e expression, a
// file argument, or stdin.
func readInput(args []string, inline string) (input, filename string, err error) {
	if inline != "" {
		return inline, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// renderError converts a parse or evaluation failure into a positioned
// diagnostic when position information is available.
func renderError(input, file string, err error) error {
	switch e := err.(type) {
	case *exp.ParseError:
		return diag.New(input, file, err.Error(), e.Index)
	case *exp.EvalError:
		if e.Span != nil {
			return diag.FromSpan(input, file, err.Error(), *e.Span)
		}
		if e.Index >= 0 {
			return diag.New(input, file, err.Error(), e.Index)
		}
	}
	return err
}
