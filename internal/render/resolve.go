package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/output"
)

// projectTemplatesDir is the project-local fragment directory.
const projectTemplatesDir = ".readmegen/templates"

// Resolve finds the fragments to render.
//
// Resolution order:
//  1. explicitDir (from --template-dir or config): must exist and contain
//     at least one readme_* file, otherwise a fatal user error
//  2. .readmegen/templates (project-local)
//  3. <configdir>/templates (user global)
//  4. built-in fragments embedded in the binary
//
// When pinned is non-empty, every named fragment must exist in the chosen
// directory; all missing paths are reported in one batched error.
func Resolve(explicitDir string, pinned []string) ([]*Fragment, error) {
	if explicitDir != "" {
		return resolveExplicit(explicitDir, pinned)
	}

	for _, tier := range []struct {
		dir    string
		source string
	}{
		{projectTemplatesDir, "project"},
		{filepath.Join(config.Dir(), "templates"), "global"},
	} {
		if tier.dir == "" {
			continue
		}
		fragments, err := Discover(tier.dir)
		if err != nil {
			continue // directory might not exist
		}
		if len(fragments) == 0 {
			continue
		}
		if err := checkPinned(tier.dir, pinned); err != nil {
			return nil, err
		}
		tagSource(fragments, tier.source)
		return fragments, nil
	}

	builtins, err := Builtin()
	if err != nil {
		return nil, err
	}
	if err := checkPinnedAgainst(builtins, pinned); err != nil {
		return nil, err
	}
	return builtins, nil
}

// resolveExplicit loads fragments from a directory the user named directly.
// Missing directory and empty directory are both fatal here: the user asked
// for this exact location.
func resolveExplicit(dir string, pinned []string) ([]*Fragment, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, output.NewUserError(fmt.Sprintf("template directory not found: %s", dir))
	}
	if err := checkPinned(dir, pinned); err != nil {
		return nil, err
	}
	fragments, err := Discover(dir)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading template directory", err)
	}
	if len(fragments) == 0 {
		return nil, output.NewUserError(fmt.Sprintf("no %s* fragments in %s", FragmentPrefix, dir))
	}
	tagSource(fragments, "flag")
	return fragments, nil
}

// checkPinned verifies every pinned fragment exists, batching all missing
// paths into a single error.
func checkPinned(dir string, pinned []string) error {
	if len(pinned) == 0 {
		return nil
	}
	missing := MissingFragments(dir, pinned)
	return missingPinnedError(missing)
}

// checkPinnedAgainst verifies every pinned name is present in an already
// loaded fragment set. Used for the embedded built-ins, which have no
// directory to stat.
func checkPinnedAgainst(fragments []*Fragment, pinned []string) error {
	if len(pinned) == 0 {
		return nil
	}
	have := make(map[string]bool, len(fragments))
	for _, frag := range fragments {
		have[frag.Name] = true
	}
	var missing []string
	for _, name := range pinned {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	return missingPinnedError(missing)
}

// missingPinnedError batches all missing pinned fragments into one error.
func missingPinnedError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return output.NewUserError("missing fragment files:\n  " + strings.Join(missing, "\n  "))
}

// tagSource stamps each fragment with the tier that supplied it.
func tagSource(fragments []*Fragment, source string) {
	for _, frag := range fragments {
		frag.Source = source
	}
}
