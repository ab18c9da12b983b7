// Package main is the entry point for the exp command-line tool.
package main

import (
	"os"

	"github.com/cwbudde/go-exp/cmd/exp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
