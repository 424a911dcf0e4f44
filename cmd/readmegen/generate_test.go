package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFragment drops a single template fragment into a fresh directory.
func writeFragment(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme_10.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fragment: %v", err)
	}
	return dir
}

func TestGenerateCommand_WritesReadme(t *testing.T) {
	isolateConfig(t)
	bin := fakeBinary(t, "demo", "v1.2.0")
	dir := writeFragment(t, "# {{CLI_NAME}} {{VERSION}}\n")
	out := filepath.Join(t.TempDir(), "README.md")

	_, _, err := runCommand(t,
		"generate", "--template-dir", dir, "--binary", bin, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got := string(data); got != "# demo 1.2.0\n" {
		t.Errorf("document = %q, want %q", got, "# demo 1.2.0\n")
	}
}

func TestGenerateCommand_DryRunWritesNothing(t *testing.T) {
	isolateConfig(t)
	bin := fakeBinary(t, "demo", "v1.2.0")
	dir := writeFragment(t, "# {{CLI_NAME}}\n")
	out := filepath.Join(t.TempDir(), "README.md")

	_, errOut, err := runCommand(t,
		"generate", "--dry-run", "--template-dir", dir, "--binary", bin, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("dry run should not write %s", out)
	}
	if !strings.Contains(errOut, "tree") {
		t.Errorf("dry run should print the tree to stderr: %q", errOut)
	}
}

func TestGenerateCommand_JSON(t *testing.T) {
	isolateConfig(t)
	bin := fakeBinary(t, "demo", "v1.2.0")
	dir := writeFragment(t, "# {{CLI_NAME}} {{VERSION}}\n")
	out := filepath.Join(t.TempDir(), "README.md")

	stdout, _, err := runCommand(t,
		"generate", "--json", "--template-dir", dir, "--binary", bin, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if result["version"] != "1.2.0" {
		t.Errorf("version = %v, want 1.2.0", result["version"])
	}
	if result["path"] != out {
		t.Errorf("path = %v, want %v", result["path"], out)
	}
}

func TestGenerateCommand_ValueFlag(t *testing.T) {
	isolateConfig(t)
	bin := fakeBinary(t, "demo", "v1.2.0")
	dir := writeFragment(t, "{{EMOJI}} {{CLI_NAME}}\n")
	out := filepath.Join(t.TempDir(), "README.md")

	_, _, err := runCommand(t,
		"generate", "--template-dir", dir, "--binary", bin, "--out", out,
		"--emoji", "🚀")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got := string(data); got != "🚀 demo\n" {
		t.Errorf("document = %q, want %q", got, "🚀 demo\n")
	}
}

func TestGenerateCommand_MissingTemplateDir(t *testing.T) {
	isolateConfig(t)
	bin := fakeBinary(t, "demo", "v1.2.0")

	_, _, err := runCommand(t,
		"generate", "--template-dir", filepath.Join(t.TempDir(), "absent"),
		"--binary", bin)
	if err == nil {
		t.Fatal("Expected error for a missing template directory")
	}
}
