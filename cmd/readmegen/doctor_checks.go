// Package main provides the entry point for the readmegen CLI.
package main

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/splinterwood/readmegen/internal/binary"
	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/render"
)

// runCoreChecks verifies the config file, template fragments, and the
// documented binary.
func runCoreChecks(cmd *cobra.Command, flags *doctorFlags) []checkResult {
	checks := []checkResult{}

	cfg, configCheck := checkConfig(flags.configPath)
	checks = append(checks, configCheck)

	checks = append(checks, checkTemplates(cfg))
	checks = append(checks, checkBinary(cmd, cfg))

	return checks
}

// checkConfig loads the config and reports which file supplied it. A broken
// config still returns usable defaults so the remaining checks can run.
func checkConfig(path string) (*config.Config, checkResult) {
	cfg, err := config.Load(path)
	if err != nil {
		return &config.Config{}, checkResult{
			Name:    "config",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "fix or remove the config file",
		}
	}

	active := path
	if active == "" {
		active = config.FindPath()
	}
	if active == "" {
		return cfg, checkResult{
			Name:    "config",
			Status:  checkPass,
			Message: "no config file, using defaults",
		}
	}
	return cfg, checkResult{
		Name:    "config",
		Status:  checkPass,
		Message: "using " + active,
	}
}

// checkTemplates resolves the fragment set the generate command would use.
func checkTemplates(cfg *config.Config) checkResult {
	fragments, err := render.Resolve(cfg.TemplateDir, cfg.Fragments)
	if err != nil {
		return checkResult{
			Name:    "templates",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "check template_dir in the config file",
		}
	}

	source := "built-in"
	if len(fragments) > 0 {
		source = fragments[0].Source
	}
	return checkResult{
		Name:    "templates",
		Status:  checkPass,
		Message: fmt.Sprintf("%d fragments (%s)", len(fragments), source),
	}
}

// checkBinary resolves the documented binary and probes its version.
func checkBinary(cmd *cobra.Command, cfg *config.Config) checkResult {
	ref := cfg.Binary
	if ref == "" {
		ref = cfg.Name
	}
	if ref == "" {
		return checkResult{
			Name:    "binary",
			Status:  checkWarn,
			Message: "no binary configured",
			Hint:    "set binary: in the config file or pass --binary to generate",
		}
	}

	path, err := binary.Resolve(ref)
	if err != nil {
		return checkResult{
			Name:    "binary",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "install the binary or fix the configured path",
		}
	}

	ver, err := binary.Version(cmd.Context(), path)
	if err != nil {
		return checkResult{
			Name:    "binary",
			Status:  checkWarn,
			Message: fmt.Sprintf("%s does not answer --version", path),
			Hint:    "{{VERSION}} will render as \"" + binary.UnknownVersion + "\"",
		}
	}
	return checkResult{
		Name:    "binary",
		Status:  checkPass,
		Message: fmt.Sprintf("%s (version %s)", path, ver),
	}
}

// runToolChecks reports which directory listing tools are installed.
func runToolChecks() []checkResult {
	return []checkResult{
		checkListingTool("eza", "install eza for the preferred listing: https://eza.rocks"),
		checkListingTool("tree", "install tree as a fallback listing tool"),
	}
}

// checkListingTool looks for an external listing tool on PATH. A missing
// tool is a warning, not a failure, because generation degrades gracefully.
func checkListingTool(name, hint string) checkResult {
	path, err := exec.LookPath(name)
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  checkWarn,
			Message: "not found on PATH",
			Hint:    hint,
		}
	}
	return checkResult{
		Name:    name,
		Status:  checkPass,
		Message: "found at " + path,
	}
}
