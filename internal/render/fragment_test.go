package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFragments(t *testing.T, dir string, names map[string]string) {
	t.Helper()
	for name, content := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestDiscoverSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{
		"readme_20_body.md":   "body",
		"readme_10_header.md": "header",
		"notes.txt":           "ignored",
		"other_10.md":         "ignored",
	})

	fragments, err := Discover(dir)
	require.NoError(t, err)

	require.Len(t, fragments, 2)
	assert.Equal(t, "readme_10_header.md", fragments[0].Name)
	assert.Equal(t, "readme_20_body.md", fragments[1].Name)
	assert.Equal(t, []string{"header"}, fragments[0].Lines)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestDiscoverEmptyDirIsNotAnError(t *testing.T) {
	fragments, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, fragments)
}

func TestMissingFragmentsBatchesAll(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{"readme_10.md": "x"})

	missing := MissingFragments(dir, []string{"readme_10.md", "readme_20.md", "readme_30.md"})

	require.Len(t, missing, 2)
	assert.Equal(t, filepath.Join(dir, "readme_20.md"), missing[0])
	assert.Equal(t, filepath.Join(dir, "readme_30.md"), missing[1])
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "trailing newline dropped", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "interior blank kept", content: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "empty file", content: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.content))
		})
	}
}

func TestResolveExplicitDirMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template directory not found")
}

func TestResolveExplicitDirEmpty(t *testing.T) {
	_, err := Resolve(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readme_")
}

func TestResolveExplicitDirPinnedMissing(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{"readme_10.md": "x"})

	_, err := Resolve(dir, []string{"readme_10.md", "readme_99.md"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "readme_99.md")
}

func TestResolveExplicitDir(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{"readme_10.md": "hello"})

	fragments, err := Resolve(dir, nil)
	require.NoError(t, err)

	require.Len(t, fragments, 1)
	assert.Equal(t, "flag", fragments[0].Source)
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("READMEGEN_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))

	fragments, err := Resolve("", nil)
	require.NoError(t, err)

	require.NotEmpty(t, fragments)
	for _, frag := range fragments {
		assert.Equal(t, "built-in", frag.Source)
	}
}

func TestResolvePinnedCheckedAgainstBuiltin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("READMEGEN_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))

	_, err := Resolve("", []string{"readme_10_header.md", "readme_99_missing.md"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readme_99_missing.md")
	assert.NotContains(t, err.Error(), "readme_10_header.md")
}

func TestResolvePinnedSatisfiedByBuiltin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("READMEGEN_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))

	fragments, err := Resolve("", []string{"readme_10_header.md"})
	require.NoError(t, err)
	require.NotEmpty(t, fragments)
}

func TestResolveProjectLocal(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	dir := filepath.Join(root, ".readmegen", "templates")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFragments(t, dir, map[string]string{"readme_10.md": "project header"})

	fragments, err := Resolve("", nil)
	require.NoError(t, err)

	require.Len(t, fragments, 1)
	assert.Equal(t, "project", fragments[0].Source)
}

func TestBuiltinFragmentsAreOrdered(t *testing.T) {
	fragments, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, fragments)

	for i := 1; i < len(fragments); i++ {
		assert.Less(t, fragments[i-1].Name, fragments[i].Name)
	}
	for _, frag := range fragments {
		assert.Equal(t, "built-in", frag.Source)
	}
}
