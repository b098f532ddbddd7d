package extractor

import "strings"

// tagMatcher locates tag occurrences in a file and attributes each one to
// the innermost declaration enclosing its line.
type tagMatcher struct {
	tag              string
	includeFunctions bool
	includeClasses   bool
}

func newTagMatcher(cfg Config) *tagMatcher {
	return &tagMatcher{
		tag:              cfg.Tag,
		includeFunctions: cfg.IncludeFunctions,
		includeClasses:   cfg.IncludeClasses,
	}
}

// Match scans every line of the file for the tag as a literal, case-sensitive
// substring. A line containing the tag more than once yields exactly one
// match. Each matching line is attributed to the innermost declaration whose
// range contains it; lines outside every declaration are module-scope
// matches, reported regardless of the include flags.
func (m *tagMatcher) Match(relPath string, lines []string, decls []Declaration) []TagMatch {
	var matches []TagMatch

	for i, line := range lines {
		if !strings.Contains(line, m.tag) {
			continue
		}
		lineNumber := i + 1

		owner := innermostDeclaration(decls, lineNumber)
		match := TagMatch{
			FilePath:   relPath,
			Kind:       KindModule,
			LineNumber: lineNumber,
			Snippet:    line,
		}

		if owner != nil {
			if owner.Kind == KindFunction && !m.includeFunctions {
				continue
			}
			if owner.Kind == KindClass && !m.includeClasses {
				continue
			}
			match.DeclName = owner.Name
			match.Kind = owner.Kind
		}

		matches = append(matches, match)
	}

	return matches
}

// innermostDeclaration returns the declaration with the smallest line span
// that contains line, or nil when the line is at module scope. Ties cannot
// occur for well-formed Python: nested declarations always span strictly
// fewer lines than their parents or start later.
func innermostDeclaration(decls []Declaration, line int) *Declaration {
	var best *Declaration
	for i := range decls {
		d := &decls[i]
		if line < d.StartLine || line > d.EndLine {
			continue
		}
		if best == nil || span(d) < span(best) || (span(d) == span(best) && d.StartLine > best.StartLine) {
			best = d
		}
	}
	return best
}

func span(d *Declaration) int { return d.EndLine - d.StartLine }
