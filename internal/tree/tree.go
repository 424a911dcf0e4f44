// Package tree acquires a directory listing from an external tool and
// normalizes it for embedding into a rendered document.
package tree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/splinterwood/readmegen/internal/logging"
)

// Source identifies which tier produced a tree listing.
type Source string

const (
	// SourcePreferred means the structured listing tool (eza) produced the tree.
	SourcePreferred Source = "preferred"
	// SourceFallback means the generic tool (tree) produced the tree.
	SourceFallback Source = "fallback"
	// SourceUnavailable means no listing tool could run.
	SourceUnavailable Source = "unavailable"
)

// Result holds the normalized tree text and the tier that produced it.
// It is produced once per render and never cached across invocations.
type Result struct {
	Lines  []string
	Source Source
}

// Text returns the tree body as a single string.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Runner executes an external listing tool and returns its raw stdout.
// It is a seam so tests can simulate each availability tier without exec.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// provider describes one listing tool tier.
type provider struct {
	source Source
	name   string
	args   func(dir string) []string
}

// providers are tried strictly in order; only one result is needed, so the
// fallback process is never spawned when the preferred tool succeeds.
var providers = []provider{
	{SourcePreferred, "eza", func(dir string) []string {
		return []string{"--tree", "--all", dir}
	}},
	{SourceFallback, "tree", func(dir string) []string {
		return []string{"--dirsfirst", "-s", dir}
	}},
}

// UnavailableBody is the synthesized placeholder embedded when no listing
// tool could run.
const UnavailableBody = "(directory tree unavailable)"

// Produce runs the listing tool tiers against dir and returns the normalized
// result. Tool failure is never fatal: each failed tier degrades to the next,
// and when every tier fails the result carries SourceUnavailable with a
// one-line placeholder body.
func Produce(ctx context.Context, dir string) *Result {
	return ProduceWith(ctx, dir, run)
}

// ProduceWith is Produce with an injectable runner.
func ProduceWith(ctx context.Context, dir string, runner Runner) *Result {
	logger := logging.GetLogger("tree")

	for _, p := range providers {
		raw, err := runner(ctx, p.name, p.args(dir)...)
		if err != nil {
			logger.Debug().Str("tool", p.name).Err(err).Msg("listing tool unavailable")
			continue
		}
		logger.Debug().Str("tool", p.name).Str("source", string(p.source)).Msg("tree acquired")
		return &Result{Lines: Normalize(raw), Source: p.source}
	}

	logger.Info().Msg("no tree tool available, embedding placeholder")
	return &Result{Lines: []string{UnavailableBody}, Source: SourceUnavailable}
}

// run executes a listing tool, capturing stdout into a scratch file that is
// removed on every exit path. The scratch file is scoped to one invocation.
func run(ctx context.Context, name string, args ...string) (string, error) {
	scratch, err := os.CreateTemp("", "readmegen-tree-*")
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	defer func() {
		_ = scratch.Close()
		_ = os.Remove(scratch.Name())
	}()

	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = scratch
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("%s not found in PATH", name)
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", fmt.Errorf("%s failed: %s", name, errMsg)
	}

	if _, err := scratch.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding scratch file: %w", err)
	}
	raw, err := io.ReadAll(scratch)
	if err != nil {
		return "", fmt.Errorf("reading scratch file: %w", err)
	}
	return string(raw), nil
}
