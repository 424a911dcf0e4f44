// Package binary resolves the documented CLI binary and extracts its
// version string by shelling out to it.
package binary

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/splinterwood/readmegen/internal/logging"
	"github.com/splinterwood/readmegen/internal/output"
)

// versionRe matches the first semver-looking token in a tool's version output.
var versionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)

// UnknownVersion is reported when the binary runs but prints nothing that
// looks like a version. Pattern misses are not fatal.
const UnknownVersion = "unknown"

// Resolve turns a binary reference into an absolute path. A reference
// containing a path separator must point at an existing executable file;
// a bare name is looked up in PATH. Failure is fatal for the render.
func Resolve(ref string) (string, error) {
	if ref == "" {
		return "", output.NewUserError("no binary specified: use --binary or set 'binary' in the config")
	}

	if strings.ContainsRune(ref, os.PathSeparator) {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return "", output.NewSystemErrorWithCause("resolving binary path", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", output.NewSystemError(fmt.Sprintf("binary not found: %s", abs))
		}
		if info.IsDir() || info.Mode().Perm()&0o111 == 0 {
			return "", output.NewSystemError(fmt.Sprintf("binary is not executable: %s", abs))
		}
		return abs, nil
	}

	path, err := exec.LookPath(ref)
	if err != nil {
		return "", output.NewSystemError(fmt.Sprintf("binary not found in PATH: %s", ref))
	}
	return path, nil
}

// Version runs `<bin> --version` and extracts the version string.
// A pattern miss yields UnknownVersion; only exec failure is an error.
func Version(ctx context.Context, bin string) (string, error) {
	logger := logging.GetLogger("binary")

	cmd := exec.CommandContext(ctx, bin, "--version")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause(
			fmt.Sprintf("running %s --version: %s", filepath.Base(bin), errMsg), err)
	}

	// Some tools print the version on stderr
	raw := stdout.String()
	if strings.TrimSpace(raw) == "" {
		raw = stderr.String()
	}

	version := Extract(raw)
	logger.Debug().Str("binary", bin).Str("version", version).Msg("version extracted")
	return version, nil
}

// Extract pulls the first version-looking token out of raw tool output,
// dropping any leading "v". Returns UnknownVersion when nothing matches.
func Extract(raw string) string {
	match := versionRe.FindStringSubmatch(raw)
	if match == nil {
		return UnknownVersion
	}
	return match[1]
}
