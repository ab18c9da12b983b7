package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	exp "github.com/cwbudde/go-exp"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-eval-print loop",
	Long: `Start an interactive session evaluating one expression per line.
The environment loaded with --env persists across the whole session.

Type :quit (or press Ctrl-D) to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&runEnvFile, "env", "", "environment file (.json, .yaml or .yml)")
	replCmd.Flags().IntVar(&runMaxSteps, "max-steps", exp.DefaultMaxSteps, "step budget")
	replCmd.Flags().IntVar(&runMaxDepth, "max-depth", exp.DefaultMaxDepth, "recursion depth budget")
	replCmd.Flags().IntVar(&runMaxArrayElements, "max-array-elements", exp.DefaultMaxArrayElements, "array literal element budget")
	replCmd.Flags().BoolVar(&runUndefinedIdents, "undefined-identifiers", false, "unknown identifiers evaluate to undefined instead of failing")
}

func runRepl(_ *cobra.Command, _ []string) error {
	opts, err := evalOptions()
	if err != nil {
		return err
	}

	fmt.Println("exp repl — enter an expression, :quit to exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("exp> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			break
		}

		val, err := exp.Evaluate(line, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, renderError(line, "", err))
			continue
		}
		fmt.Println(val.String())
	}
	return scanner.Err()
}
