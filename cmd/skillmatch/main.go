// Package main is the skillmatch command: the HTTP server plus offline
// ranking and threshold tools.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "skillmatch",
	Short:         "Skill matching and candidate ranking engine",
	Long:          "skillmatch scores candidates against a task's required skills, decides who qualifies and ranks the rest.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
