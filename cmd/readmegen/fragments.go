// Package main provides the entry point for the readmegen CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/render"
)

// fragmentsFlags holds the command-line flags for the fragments command.
type fragmentsFlags struct {
	configPath  string
	templateDir string
}

// newFragmentsCmd creates the fragments command.
func newFragmentsCmd() *cobra.Command {
	flags := &fragmentsFlags{}

	cmd := &cobra.Command{
		Use:   "fragments",
		Short: "List the template fragments that would render",
		Long: `List the template fragments that would render, in order.

Shows each fragment's name, the resolution tier that supplied it (flag,
project, global, or built-in), and its path.

Examples:
  readmegen fragments                        # Resolved fragment set
  readmegen fragments --template-dir ./tpl   # Fragments from a specific directory
  readmegen fragments --json                 # Structured output`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFragments(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&flags.templateDir, "template-dir", "", "Directory containing readme_* fragments")

	return cmd
}

// runFragments executes the fragments command.
func runFragments(cmd *cobra.Command, flags *fragmentsFlags) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		printer.Error(err)
		return err
	}

	dir := flags.templateDir
	if dir == "" {
		dir = cfg.TemplateDir
	}

	fragments, err := render.Resolve(dir, cfg.Fragments)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		items := make([]map[string]any, 0, len(fragments))
		for _, frag := range fragments {
			items = append(items, map[string]any{
				"name":   frag.Name,
				"source": frag.Source,
				"path":   frag.Path,
				"lines":  len(frag.Lines),
			})
		}
		return printer.WriteJSON(map[string]any{"fragments": items})
	}

	rows := make([][]string, 0, len(fragments))
	for _, frag := range fragments {
		path := frag.Path
		if path == "" {
			path = "-"
		}
		rows = append(rows, []string{frag.Name, frag.Source, path})
	}
	printer.Table([]string{"NAME", "SOURCE", "PATH"}, rows)
	return nil
}
