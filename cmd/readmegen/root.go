// Package main provides the entry point for the readmegen CLI.
package main

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/envfile"
	"github.com/splinterwood/readmegen/internal/logging"
	"github.com/splinterwood/readmegen/internal/output"
)

// newRootCmd creates the root command for the readmegen CLI.
func newRootCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "readmegen",
		Short: "Generate a templated README for a CLI tool",
		Long: `Readmegen assembles a README from ordered template fragments.

Fragments are readme_* files rendered in filename order. Each line gets
{{KEY}} placeholders substituted from flags, environment variables, and the
config file, and a {{FOLDER_TREE}} marker is replaced with a normalized
directory listing produced by eza (or tree as a fallback). The documented
binary's --version output supplies the {{VERSION}} value.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'readmegen --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Env files supply READMEGEN_* values that can't be exported globally.
	// Environment variables already set always take precedence.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		logging.Setup(verbosity)
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always, never")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. <configdir>/env   (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommands adds all subcommands.
func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newTreeCmd())
	cmd.AddCommand(newFragmentsCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newServeCmd())
}
