package generate

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/render"
)

// fakeBinary writes an executable shell script that prints a version string.
func fakeBinary(t *testing.T, name, version string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script test binary")
	}
	path := filepath.Join(t.TempDir(), name)
	script := "#!/bin/sh\necho \"" + name + " " + version + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// isolateConfig keeps the default config search away from the developer's
// real working directory and config home.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("READMEGEN_CONFIG_HOME", filepath.Join(t.TempDir(), "no-config"))
}

// preferredRunner simulates a working eza.
func preferredRunner(_ context.Context, name string, _ ...string) (string, error) {
	if name == "eza" {
		return ".\n├── cmd\n└── main.go\n", nil
	}
	return "", os.ErrNotExist
}

func TestRunEndToEnd(t *testing.T) {
	isolateConfig(t)

	bin := fakeBinary(t, "demo", "v2.0.1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "readme_10.md"),
		[]byte("# {{CLI_NAME}} {{VERSION}}\n{{FOLDER_TREE}}\n"), 0o644))

	result, err := Run(context.Background(), Options{
		TemplateDir: dir,
		Binary:      bin,
		TreeRunner:  preferredRunner,
	})
	require.NoError(t, err)

	assert.Equal(t, "2.0.1", result.Version)
	assert.Equal(t, "demo", result.Mapping[render.KeyCLIName])
	assert.Equal(t, config.DefaultOutput, result.OutputPath)

	wantDoc := "# demo 2.0.1\n```\n.\n├── cmd\n└── main.go\n```\n"
	assert.Equal(t, wantDoc, result.Document)
}

func TestRunExplicitConfigMissingIsFatal(t *testing.T) {
	bin := fakeBinary(t, "demo", "1.0.0")

	_, err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
		Binary:     bin,
		TreeRunner: preferredRunner,
	})

	require.Error(t, err)
}

func TestRunMissingBinaryIsFatal(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme_10.md"), []byte("x\n"), 0o644))

	_, err := Run(context.Background(), Options{
		TemplateDir: dir,
		Binary:      "not-a-real-binary-xyz",
		TreeRunner:  preferredRunner,
	})

	require.Error(t, err)
}

func TestRunConfigValuesFlowIntoMapping(t *testing.T) {
	bin := fakeBinary(t, "demo", "1.0.0")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme_10.md"),
		[]byte("{{TAGLINE}} / {{EMOJI}}\n"), 0o644))

	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("tagline: from config\n"), 0o644))

	result, err := Run(context.Background(), Options{
		ConfigPath:  cfgPath,
		TemplateDir: dir,
		Binary:      bin,
		TreeRunner:  preferredRunner,
	})
	require.NoError(t, err)

	assert.Equal(t, "from config / "+config.DefaultEmoji+"\n", result.Document)
}

func TestRunFlagOverridesEnvOverridesConfig(t *testing.T) {
	bin := fakeBinary(t, "demo", "1.0.0")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme_10.md"),
		[]byte("{{TAGLINE}}|{{QUOTE}}\n"), 0o644))

	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("tagline: from config\nquote: config quote\n"), 0o644))

	t.Setenv(EnvTagline, "from env")

	result, err := Run(context.Background(), Options{
		ConfigPath:  cfgPath,
		TemplateDir: dir,
		Binary:      bin,
		Tagline:     "from flag",
		TreeRunner:  preferredRunner,
	})
	require.NoError(t, err)

	assert.Equal(t, "from flag|config quote\n", result.Document)
}

func TestRunUnresolvedPlaceholderLeftVerbatim(t *testing.T) {
	isolateConfig(t)

	bin := fakeBinary(t, "demo", "1.0.0")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme_10.md"),
		[]byte("brew: {{BREW_LINK}}\n"), 0o644))

	result, err := Run(context.Background(), Options{
		TemplateDir: dir,
		Binary:      bin,
		TreeRunner:  preferredRunner,
	})
	require.NoError(t, err)

	assert.Equal(t, "brew: {{BREW_LINK}}\n", result.Document)
}

func TestResultWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	result := &Result{Document: "hello\n", OutputPath: path}

	require.NoError(t, result.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestRunNameFallsBackToBinaryBasename(t *testing.T) {
	isolateConfig(t)

	bin := fakeBinary(t, "mytool", "0.3.0")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme_10.md"),
		[]byte("{{CLI_NAME}}\n"), 0o644))

	result, err := Run(context.Background(), Options{
		TemplateDir: dir,
		Binary:      bin,
		TreeRunner:  preferredRunner,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Document, "mytool"))
}
