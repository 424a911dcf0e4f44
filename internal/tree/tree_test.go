package tree

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner simulates tool availability per tool name and records calls.
type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) run(_ context.Context, name string, _ ...string) (string, error) {
	f.calls = append(f.calls, name)
	out, ok := f.outputs[name]
	if !ok {
		return "", errors.New(name + " not found in PATH")
	}
	return out, nil
}

func TestProduceWithPreferred(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"eza": ".\n├── cmd\n└── main.go\n",
	}}

	result := ProduceWith(context.Background(), ".", runner.run)

	require.Equal(t, SourcePreferred, result.Source)
	assert.Equal(t, []string{".", "├── cmd", "└── main.go"}, result.Lines)
	assert.Equal(t, []string{"eza"}, runner.calls, "fallback must not be spawned when preferred succeeds")
}

func TestProduceWithFallback(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"tree": ".\n└── [ 120]  main.go\n\n1 directories, 1 files\n",
	}}

	result := ProduceWith(context.Background(), ".", runner.run)

	require.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, []string{".", "└── [ 120]  main.go"}, result.Lines)
	assert.Equal(t, []string{"eza", "tree"}, runner.calls)
}

func TestProduceWithUnavailable(t *testing.T) {
	runner := &fakeRunner{}

	result := ProduceWith(context.Background(), ".", runner.run)

	require.Equal(t, SourceUnavailable, result.Source)
	assert.Equal(t, []string{UnavailableBody}, result.Lines)
}

func TestProduceToolErrorIsNotFatal(t *testing.T) {
	// Runner errors on every tier; Produce must still return a result.
	failing := func(context.Context, string, ...string) (string, error) {
		return "", errors.New("exit status 2")
	}

	result := ProduceWith(context.Background(), ".", failing)

	require.NotNil(t, result)
	assert.Equal(t, SourceUnavailable, result.Source)
}

func TestNormalizeStripsANSI(t *testing.T) {
	raw := "\x1b[1;32msrc\x1b[0m\n├── \x1b[0;36mmain.go\x1b[0m\x1b[K\n"

	lines := Normalize(raw)

	require.Equal(t, []string{"src", "├── main.go"}, lines)
	for _, line := range lines {
		assert.NotContains(t, line, "\x1b")
	}
}

func TestNormalizeDropsSummaryLineAnywhere(t *testing.T) {
	raw := ".\n3 directories, 14 files\n├── cmd\n└── go.mod\n12 directories, 2 files\n"

	lines := Normalize(raw)

	assert.Equal(t, []string{".", "├── cmd", "└── go.mod"}, lines)
}

func TestNormalizeDropsNoiseLines(t *testing.T) {
	raw := ".\n→ a newer version of eza is available\n• symlink skipped\n├── cmd\n"

	lines := Normalize(raw)

	assert.Equal(t, []string{".", "├── cmd"}, lines)
}

func TestNormalizeDropsFragmentReferences(t *testing.T) {
	raw := ".\n├── readme_10_header.md\n├── main.go\n└── templates\n    └── readme_40_tree.md\n"

	lines := Normalize(raw)

	assert.Equal(t, []string{".", "├── main.go", "└── templates"}, lines)
}

func TestNormalizeTrimsBlankEdges(t *testing.T) {
	raw := "\n\n.\n├── cmd\n\n\n"

	lines := Normalize(raw)

	assert.Equal(t, []string{".", "├── cmd"}, lines)
}

func TestResultText(t *testing.T) {
	result := &Result{Lines: []string{"root", " file.txt"}}
	assert.Equal(t, "root\n file.txt", result.Text())
}

func TestRunRemovesScratchFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh and TMPDIR")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	scratchDir := t.TempDir()
	t.Setenv("TMPDIR", scratchDir)

	raw, err := run(context.Background(), "sh", "-c", "echo listed")
	require.NoError(t, err)
	assert.Contains(t, raw, "listed")

	_, err = run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)

	_, err = run(context.Background(), "readmegen-no-such-tool")
	require.Error(t, err)

	entries, err := os.ReadDir(scratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch files must not survive a run")
}
