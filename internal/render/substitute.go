// Package render implements fragment-based template rendering: placeholder
// substitution, comment suppression, and tree-block embedding.
package render

import "strings"

// Placeholder keys recognized in template fragments. The set is fixed; there
// is no dynamic key discovery, and keys are case-sensitive.
const (
	KeyCLIName     = "CLI_NAME"
	KeyVersion     = "VERSION"
	KeyTagline     = "TAGLINE"
	KeyQuote       = "QUOTE"
	KeyQuoteAuthor = "QUOTE_AUTHOR"
	KeyBrewLink    = "BREW_LINK"
	KeyEmoji       = "EMOJI"
)

// Keys lists every recognized placeholder key. Substitution walks this slice
// rather than the mapping so replacement order is deterministic.
var Keys = []string{
	KeyCLIName,
	KeyVersion,
	KeyTagline,
	KeyQuote,
	KeyQuoteAuthor,
	KeyBrewLink,
	KeyEmoji,
}

// TreeMarker triggers tree-block expansion. It is checked after ordinary
// substitution, so it is deliberately not part of Keys.
const TreeMarker = "{{FOLDER_TREE}}"

// commentPrefix marks editor-only template lines that are never emitted.
const commentPrefix = "# ---"

// Mapping holds single-line values for placeholder keys. It is immutable for
// the duration of one render and owned by the caller.
type Mapping map[string]string

// Substitute replaces every occurrence of {{KEY}} in line with the mapped
// value for each recognized key. Replacement is literal and single-pass: no
// escaping, and substituted values are never re-scanned, so a value that
// happens to contain another key's token stays as-is. Tokens for keys absent
// from the mapping are left verbatim so unresolved placeholders surface
// visibly in the output.
func Substitute(line string, m Mapping) string {
	pairs := make([]string, 0, 2*len(Keys))
	for _, key := range Keys {
		val, ok := m[key]
		if !ok {
			continue
		}
		pairs = append(pairs, "{{"+key+"}}", val)
	}
	if len(pairs) == 0 {
		return line
	}
	return strings.NewReplacer(pairs...).Replace(line)
}

// IsComment reports whether a line is a reserved internal comment
// ("# ---" prefix) that must be suppressed before substitution.
func IsComment(line string) bool {
	return strings.HasPrefix(line, commentPrefix)
}
