// Package formatter renders an ExtractionResult as terminal or document
// text. Every renderer is a pure function over the result; none of them
// re-scan the filesystem.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/tagex/internal/extractor"
)

// RenderTree renders a nested per-file view of the result, in file scan
// order with matches in line order. With showCode, each match is followed by
// its source line.
func RenderTree(result *extractor.ExtractionResult, showCode bool) string {
	var b strings.Builder

	if result.TotalMatches == 0 {
		fmt.Fprintf(&b, "No occurrences of %q found\n", result.Config.Tag)
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d match(es) for %q\n", result.TotalMatches, result.Config.Tag)

	files := result.MatchesByFile()
	for fi, fr := range files {
		last := fi == len(files)-1
		branch, stem := "├── ", "│   "
		if last {
			branch, stem = "└── ", "    "
		}
		fmt.Fprintf(&b, "%s%s (%d match(es))\n", branch, fr.FilePath, len(fr.Matches))

		for mi, m := range fr.Matches {
			leaf := "├── "
			if mi == len(fr.Matches)-1 {
				leaf = "└── "
			}
			fmt.Fprintf(&b, "%s%s%s (%s, line %d)\n", stem, leaf, displayName(m), m.Kind, m.LineNumber)
			if showCode && m.Snippet != "" {
				cont := "│   "
				if mi == len(fr.Matches)-1 {
					cont = "    "
				}
				fmt.Fprintf(&b, "%s%s%s\n", stem, cont, strings.TrimSpace(m.Snippet))
			}
		}
	}

	return b.String()
}

// displayName labels module-scope matches, which carry no declaration name.
func displayName(m extractor.TagMatch) string {
	if m.DeclName == "" {
		return "(module)"
	}
	return m.DeclName
}
