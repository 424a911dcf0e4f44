package tree

import (
	"regexp"
	"strings"
)

var (
	// ansiRe matches the color and erase-line escape forms terminal tools emit.
	ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[mK]`)

	// summaryRe matches the trailing report line tree prints after the listing.
	summaryRe = regexp.MustCompile(`^\d+ directories, \d+ files$`)
)

// noisePrefixes are decorative glyphs some listing tools prepend to
// informational lines (update hints, symlink warnings). Lines starting with
// one of these are not part of the tree itself.
var noisePrefixes = []string{"→", "•", "▸"}

// fragmentPattern marks lines that reference the tool's own template
// fragments. They are dropped so the template directory never leaks into the
// generated self-description.
const fragmentPattern = "readme_"

// Normalize turns raw listing-tool output into plain tree lines.
// The pipeline, in order: strip ANSI escapes, drop decorative noise lines,
// drop template-fragment references, drop the directories/files summary.
// Traversal order of the underlying tool is preserved.
func Normalize(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = ansiRe.ReplaceAllString(line, "")
		line = strings.TrimRight(line, " \t\r")

		trimmed := strings.TrimSpace(line)
		if hasNoisePrefix(trimmed) {
			continue
		}
		if strings.Contains(line, fragmentPattern) {
			continue
		}
		if summaryRe.MatchString(trimmed) {
			continue
		}
		lines = append(lines, line)
	}

	return trimBlankEdges(lines)
}

// hasNoisePrefix reports whether a trimmed line starts with a decorative glyph.
func hasNoisePrefix(trimmed string) bool {
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// trimBlankEdges removes leading and trailing empty lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
