package formatter

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/tagex/internal/extractor"
)

// DocumentFormat selects the persisted report layout.
type DocumentFormat string

const (
	FormatMarkdown DocumentFormat = "markdown"
	FormatPlain    DocumentFormat = "plain"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (DocumentFormat, error) {
	switch DocumentFormat(s) {
	case FormatMarkdown, FormatPlain:
		return DocumentFormat(s), nil
	}
	return "", fmt.Errorf("invalid format %q (want markdown or plain)", s)
}

// RenderDocument renders the full report: a header with the tag, path, and
// counts, then one section per file with at least one match and one
// subsection per match.
func RenderDocument(result *extractor.ExtractionResult, format DocumentFormat, showCode bool) string {
	if format == FormatMarkdown {
		return renderMarkdown(result, showCode)
	}
	return renderPlain(result, showCode)
}

func scanMode(result *extractor.ExtractionResult) string {
	if result.Config.IsSingleFile() {
		return "single file"
	}
	return "recursive directory"
}

func renderMarkdown(result *extractor.ExtractionResult, showCode bool) string {
	var b strings.Builder

	b.WriteString("# Tag Extraction Report\n\n")
	fmt.Fprintf(&b, "**Tag**: `%s`  \n", result.Config.Tag)
	fmt.Fprintf(&b, "**Mode**: %s  \n", scanMode(result))
	fmt.Fprintf(&b, "**Path**: `%s`  \n", result.Config.TargetPath)
	fmt.Fprintf(&b, "**Files processed**: %d  \n", result.FilesProcessed)
	fmt.Fprintf(&b, "**Matches**: %d  \n", result.TotalMatches)
	if len(result.SkippedFiles) > 0 {
		fmt.Fprintf(&b, "**Skipped files**: %d  \n", len(result.SkippedFiles))
	}
	b.WriteString("\n")

	if result.TotalMatches == 0 {
		b.WriteString("No matches found.\n")
		appendSkippedMarkdown(&b, result)
		return b.String()
	}

	b.WriteString("---\n")

	for _, fr := range result.MatchesByFile() {
		fmt.Fprintf(&b, "\n## `%s`\n", fr.FilePath)
		for _, m := range fr.Matches {
			fmt.Fprintf(&b, "\n### `%s` (%s, line %d)\n", displayName(m), m.Kind, m.LineNumber)
			if showCode && m.Snippet != "" {
				fmt.Fprintf(&b, "\n```python\n%s\n```\n", m.Snippet)
			}
		}
	}

	appendSkippedMarkdown(&b, result)
	return b.String()
}

func appendSkippedMarkdown(b *strings.Builder, result *extractor.ExtractionResult) {
	if len(result.SkippedFiles) == 0 {
		return
	}
	b.WriteString("\n## Skipped files\n\n")
	for _, s := range result.SkippedFiles {
		fmt.Fprintf(b, "- `%s`: %s\n", s.FilePath, s.Reason)
	}
}

func renderPlain(result *extractor.ExtractionResult, showCode bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tag: %s\n", result.Config.Tag)
	fmt.Fprintf(&b, "Mode: %s\n", scanMode(result))
	fmt.Fprintf(&b, "Path: %s\n", result.Config.TargetPath)
	fmt.Fprintf(&b, "Files processed: %d\n", result.FilesProcessed)
	fmt.Fprintf(&b, "Matches: %d\n", result.TotalMatches)
	if len(result.SkippedFiles) > 0 {
		fmt.Fprintf(&b, "Skipped files: %d\n", len(result.SkippedFiles))
	}

	if result.TotalMatches == 0 {
		b.WriteString("\nNo matches found.\n")
		appendSkippedPlain(&b, result)
		return b.String()
	}

	for _, fr := range result.MatchesByFile() {
		b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
		b.WriteString(fr.FilePath + "\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
		for _, m := range fr.Matches {
			fmt.Fprintf(&b, "\n[%s] %s (line %d)\n", strings.ToUpper(string(m.Kind)), displayName(m), m.LineNumber)
			if showCode && m.Snippet != "" {
				b.WriteString(strings.Repeat("-", 60) + "\n")
				fmt.Fprintf(&b, "%4d    %s\n", m.LineNumber, m.Snippet)
			}
		}
	}

	appendSkippedPlain(&b, result)
	return b.String()
}

func appendSkippedPlain(b *strings.Builder, result *extractor.ExtractionResult) {
	if len(result.SkippedFiles) == 0 {
		return
	}
	b.WriteString("\nSkipped files:\n")
	for _, s := range result.SkippedFiles {
		fmt.Fprintf(b, "  - %s: %s\n", s.FilePath, s.Reason)
	}
}
