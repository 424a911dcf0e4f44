package render

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/readme_*.md
var builtinFS embed.FS

// Builtin returns the embedded default fragment set, sorted by name.
func Builtin() ([]*Fragment, error) {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading builtin fragments: %w", err)
	}

	var fragments []*Fragment
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), FragmentPrefix) {
			continue
		}
		data, err := builtinFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin fragment %s: %w", entry.Name(), err)
		}
		fragments = append(fragments, &Fragment{
			Name:   entry.Name(),
			Source: "built-in",
			Lines:  splitLines(string(data)),
		})
	}

	sort.Slice(fragments, func(i, j int) bool {
		return fragments[i].Name < fragments[j].Name
	})
	return fragments, nil
}
