package cmd

import (
	"fmt"
	"os"
	"runtime"

	exp "github.com/cwbudde/go-exp"
	"github.com/cwbudde/go-exp/internal/diag"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Parse expression files and report diagnostics",
	Long: `Parse every given file concurrently and report the first diagnostic
for each file that fails. Exits non-zero if any file fails to parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	results := make([]string, len(args))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, path := range args {
		idx, path := idx, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				results[idx] = fmt.Sprintf("%s: %v", path, err)
				return nil
			}
			input := string(data)
			if _, err := exp.Parse(input); err != nil {
				pe := err.(*exp.ParseError)
				results[idx] = diag.New(input, path, err.Error(), pe.Index).Format(false)
			}
			return nil
		})
	}
	// The workers never return errors; failures are collected per file so
	// one bad input does not hide the others.
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r != "" {
			failed++
			fmt.Fprintln(os.Stderr, r)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	fmt.Printf("%d files OK\n", len(args))
	return nil
}
