package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mvp-joe/tagex/internal/extractor"
)

// RenderTable renders a flat aligned table, one row per match, in the same
// file/match order as the underlying result. Columns are FILE, KIND, NAME,
// LINE, plus SNIPPET when showCode is set. Widths use terminal display width
// so non-ASCII paths and snippets stay aligned.
func RenderTable(result *extractor.ExtractionResult, showCode bool) string {
	if result.TotalMatches == 0 {
		return fmt.Sprintf("No occurrences of %q found\n", result.Config.Tag)
	}

	headers := []string{"FILE", "KIND", "NAME", "LINE"}
	if showCode {
		headers = append(headers, "SNIPPET")
	}

	rows := make([][]string, 0, result.TotalMatches)
	for _, m := range result.AllMatches() {
		row := []string{m.FilePath, string(m.Kind), displayName(m), fmt.Sprintf("%d", m.LineNumber)}
		if showCode {
			row = append(row, strings.TrimSpace(m.Snippet))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow(&b, headers, widths)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(&b, sep, widths)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			continue
		}
		b.WriteString(padRight(cell, widths[i]))
	}
	b.WriteString("\n")
}

// padRight pads with spaces to the given display width.
func padRight(s string, w int) string {
	pad := w - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
