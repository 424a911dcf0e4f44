// Package output provides structured output handling for the readmegen CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and automated agents.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.Colorize(mode, cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "README written", "path": outPath})
//	printer.Error(err)
//	printer.Println("Some text")
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling that
// automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, missing templates)
//	output.ExitSystemError // 2: System error (exec failed, I/O error)
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("template directory not found: ./templates")
//	output.NewSystemError("binary is not executable")
//
// These errors carry exit codes used for both JSON error output and the
// process exit code.
package output
