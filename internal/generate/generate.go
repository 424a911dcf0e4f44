// Package generate orchestrates one README render: value resolution,
// fragment discovery, tree acquisition, and document assembly.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/splinterwood/readmegen/internal/binary"
	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/logging"
	"github.com/splinterwood/readmegen/internal/output"
	"github.com/splinterwood/readmegen/internal/render"
	"github.com/splinterwood/readmegen/internal/tree"
)

// Options are the caller-supplied inputs for one render. Empty fields fall
// back to environment variables, then the config file, then built-in defaults.
type Options struct {
	ConfigPath  string
	TemplateDir string
	Binary      string
	Name        string
	Output      string

	Emoji       string
	Tagline     string
	Quote       string
	QuoteAuthor string
	BrewLink    string

	// TreeDir is the directory to embed a listing of. Defaults to ".".
	TreeDir string

	// TreeRunner overrides the external tool runner (tests).
	TreeRunner tree.Runner
}

// Result holds everything one render produced.
type Result struct {
	Document   string
	Tree       *tree.Result
	Fragments  []*render.Fragment
	Mapping    render.Mapping
	Version    string
	BinaryPath string
	OutputPath string
}

// Write stores the rendered document at OutputPath.
func (r *Result) Write() error {
	if err := os.WriteFile(r.OutputPath, []byte(r.Document), 0o644); err != nil {
		return output.NewSystemErrorWithCause(
			fmt.Sprintf("writing %s", r.OutputPath), err)
	}
	return nil
}

// Run performs one complete render. It never writes the document; callers
// decide between file output, preview, and dry-run handling.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("generate")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	binPath, version, err := resolveBinary(ctx, opts, cfg)
	if err != nil {
		return nil, err
	}

	templateDir := firstNonEmpty(opts.TemplateDir, cfg.TemplateDir)
	fragments, err := render.Resolve(templateDir, cfg.Fragments)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("fragments", len(fragments)).Str("dir", templateDir).Msg("fragments resolved")

	treeDir := opts.TreeDir
	if treeDir == "" {
		treeDir = "."
	}
	runner := opts.TreeRunner
	var tr *tree.Result
	if runner != nil {
		tr = tree.ProduceWith(ctx, treeDir, runner)
	} else {
		tr = tree.Produce(ctx, treeDir)
	}

	mapping := buildMapping(opts, cfg, nameFor(opts, cfg, binPath), version)
	doc := render.Render(fragments, mapping, tr)

	return &Result{
		Document:   doc,
		Tree:       tr,
		Fragments:  fragments,
		Mapping:    mapping,
		Version:    version,
		BinaryPath: binPath,
		OutputPath: outputPath(opts, cfg),
	}, nil
}

// resolveBinary resolves the documented binary and extracts its version.
// The reference comes from flags, then config, then the tool name itself.
func resolveBinary(ctx context.Context, opts Options, cfg *config.Config) (string, string, error) {
	ref := firstNonEmpty(opts.Binary, cfg.Binary, opts.Name, cfg.Name)
	binPath, err := binary.Resolve(ref)
	if err != nil {
		return "", "", err
	}
	version, err := binary.Version(ctx, binPath)
	if err != nil {
		return "", "", err
	}
	return binPath, version, nil
}

// nameFor picks CLI_NAME: flag, config, then the binary basename.
func nameFor(opts Options, cfg *config.Config, binPath string) string {
	return firstNonEmpty(opts.Name, cfg.Name, filepath.Base(binPath))
}

// outputPath picks the output file: flag, config, then README.md.
func outputPath(opts Options, cfg *config.Config) string {
	return firstNonEmpty(opts.Output, cfg.Output, config.DefaultOutput)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
