// Package main provides the entry point for the readmegen CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/splinterwood/readmegen/internal/tree"
)

// newTreeCmd creates the tree command.
func newTreeCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the normalized directory tree",
		Long: `Print the directory tree exactly as it would be embedded in the README.

The listing comes from eza when available, falls back to tree, and degrades
to a placeholder when neither tool is installed. ANSI sequences, summary
lines, and fragment files are stripped from the output.

Examples:
  readmegen tree              # Tree of the current directory
  readmegen tree --dir ./src  # Tree of a specific directory
  readmegen tree --json       # Structured output with the source tier`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTree(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to list")

	return cmd
}

// runTree executes the tree command.
func runTree(cmd *cobra.Command, dir string) error {
	printer := newPrinter(cmd)
	result := tree.Produce(cmd.Context(), dir)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"source": string(result.Source),
			"lines":  result.Lines,
		})
	}

	// Source tier goes to stderr so the tree itself stays pipeable.
	printer.Stderr("source: %s\n", result.Source)
	for _, line := range result.Lines {
		printer.Print("%s\n", line)
	}
	return nil
}
