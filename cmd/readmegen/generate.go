// Package main provides the entry point for the readmegen CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/splinterwood/readmegen/internal/generate"
	"github.com/splinterwood/readmegen/internal/preview"
)

// generateFlags holds the command-line flags for the generate command.
type generateFlags struct {
	configPath  string
	templateDir string
	binary      string
	name        string
	out         string
	treeDir     string

	emoji       string
	tagline     string
	quote       string
	quoteAuthor string
	brewLink    string

	dryRun  bool
	preview bool
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the README from template fragments",
		Long: `Render the README from ordered template fragments.

Fragment resolution tries, in order: the --template-dir flag, the project's
.readmegen/templates directory, the global config templates directory, and
finally the built-in fragment set. Placeholder values resolve as
flags > environment variables > config file > defaults.

Examples:
  readmegen generate                      # Write README.md
  readmegen generate --dry-run            # Show the tree, write nothing
  readmegen generate --preview            # Render to the terminal, write nothing
  readmegen generate --binary ./bin/demo  # Document a specific binary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&flags.templateDir, "template-dir", "", "Directory containing readme_* fragments")
	cmd.Flags().StringVar(&flags.binary, "binary", "", "Path or PATH name of the documented binary")
	cmd.Flags().StringVar(&flags.name, "name", "", "Tool name for {{CLI_NAME}} (defaults to the binary basename)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output path (default README.md)")
	cmd.Flags().StringVar(&flags.treeDir, "tree-dir", "", "Directory to embed a listing of (default \".\")")

	cmd.Flags().StringVar(&flags.emoji, "emoji", "", "Value for {{EMOJI}}")
	cmd.Flags().StringVar(&flags.tagline, "tagline", "", "Value for {{TAGLINE}}")
	cmd.Flags().StringVar(&flags.quote, "quote", "", "Value for {{QUOTE}}")
	cmd.Flags().StringVar(&flags.quoteAuthor, "quote-author", "", "Value for {{QUOTE_AUTHOR}}")
	cmd.Flags().StringVar(&flags.brewLink, "brew-link", "", "Value for {{BREW_LINK}}")

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the normalized tree and write nothing")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "Render the document to the terminal and write nothing")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	printer := newPrinter(cmd)

	result, err := generate.Run(cmd.Context(), generate.Options{
		ConfigPath:  flags.configPath,
		TemplateDir: flags.templateDir,
		Binary:      flags.binary,
		Name:        flags.name,
		Output:      flags.out,
		Emoji:       flags.emoji,
		Tagline:     flags.tagline,
		Quote:       flags.quote,
		QuoteAuthor: flags.quoteAuthor,
		BrewLink:    flags.brewLink,
		TreeDir:     flags.treeDir,
	})
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.dryRun {
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{
				"dry_run":     true,
				"tree_source": string(result.Tree.Source),
				"tree":        result.Tree.Lines,
			})
		}
		printer.Stderr("tree (%s):\n", result.Tree.Source)
		for _, line := range result.Tree.Lines {
			printer.Stderr("%s\n", line)
		}
		return nil
	}

	if flags.preview {
		printer.Print("%s", preview.NewRenderer().Render(result.Document))
		return nil
	}

	if err := result.Write(); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message":     "Wrote " + result.OutputPath,
		"path":        result.OutputPath,
		"version":     result.Version,
		"tree_source": string(result.Tree.Source),
		"fragments":   len(result.Fragments),
	})
}
