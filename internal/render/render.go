package render

import (
	"strings"

	"github.com/splinterwood/readmegen/internal/tree"
)

// Advisory banners prepended to the tree block when a lower tier was used.
const (
	fallbackNotice    = "> **Note:** `eza` was not found, so this tree was generated with `tree`."
	fallbackHint      = "> Install [eza](https://eza.rocks) for a richer listing."
	unavailableNotice = "> **Note:** no tree listing tool was found; install `eza` or `tree` to embed one."
	fence             = "```"
)

// Render concatenates the processed fragments into the final document.
// Per fragment, per line, in fragment order then line order: reserved
// comments are suppressed, placeholders substituted, and a line containing
// the tree marker after substitution is replaced wholesale by the tree block.
// No reordering or whitespace collapsing happens across fragment boundaries.
func Render(fragments []*Fragment, m Mapping, tr *tree.Result) string {
	var doc []string
	for _, frag := range fragments {
		for _, line := range frag.Lines {
			if IsComment(line) {
				continue
			}
			line = Substitute(line, m)
			if strings.Contains(line, TreeMarker) {
				doc = append(doc, treeBlock(tr)...)
				continue
			}
			doc = append(doc, line)
		}
	}
	if len(doc) == 0 {
		return ""
	}
	return strings.Join(doc, "\n") + "\n"
}

// treeBlock builds the lines that replace a tree-marker line: an advisory
// banner when a lower tier produced the tree, then the fenced listing.
func treeBlock(tr *tree.Result) []string {
	var block []string
	switch tr.Source {
	case tree.SourceFallback:
		block = append(block, fallbackNotice, fallbackHint, "")
	case tree.SourceUnavailable:
		block = append(block, unavailableNotice, "")
	case tree.SourcePreferred:
		// no banner
	}
	block = append(block, fence)
	block = append(block, tr.Lines...)
	block = append(block, fence)
	return block
}
