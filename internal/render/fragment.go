package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FragmentPrefix is the fixed naming pattern for template fragment files.
const FragmentPrefix = "readme_"

// Fragment is one template file contributing an ordered slice of the final
// document. Fragments render in ascending filename-sort order.
type Fragment struct {
	Name   string
	Path   string // empty for built-in fragments
	Source string // "flag", "project", "global", or "built-in"
	Lines  []string
}

// Discover loads every readme_* file in dir, sorted lexically by filename.
// Returns an error if the directory cannot be read; a directory with no
// matching files yields an empty slice and no error so resolution can fall
// through to the next tier.
func Discover(dir string) ([]*Fragment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	var fragments []*Fragment
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), FragmentPrefix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		lines, err := loadLines(path)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, &Fragment{
			Name:  entry.Name(),
			Path:  path,
			Lines: lines,
		})
	}

	// os.ReadDir returns sorted entries already; sort again so the ordering
	// invariant does not depend on that detail.
	sort.Slice(fragments, func(i, j int) bool {
		return fragments[i].Name < fragments[j].Name
	})
	return fragments, nil
}

// MissingFragments returns the paths from names that do not exist under dir.
// Every missing path is reported so the user can fix all of them in one pass.
func MissingFragments(dir string, names []string) []string {
	var missing []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

// loadLines reads a fragment file into lines. A trailing newline does not
// produce a spurious empty last line.
func loadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fragment %s: %w", path, err)
	}
	return splitLines(string(data)), nil
}

// splitLines splits file content into lines, dropping the empty element a
// final newline produces.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
