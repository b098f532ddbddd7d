package extractor

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DeclKind classifies what a tag match is attached to.
type DeclKind string

const (
	KindFunction DeclKind = "function"
	KindClass    DeclKind = "class"
	KindModule   DeclKind = "module"
)

// Sentinel errors for failures that abort a scan before any file is read.
var (
	ErrPathNotFound = errors.New("path not found")
	ErrNoFilesFound = errors.New("no source files found")
)

// ParseError reports a single file that could not be parsed. It never aborts
// a scan; the orchestrator records the file as skipped and continues.
type ParseError struct {
	FilePath string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.FilePath, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Config describes one extraction run. It is built once from user input,
// validated, and never mutated afterwards.
type Config struct {
	// Tag is the literal substring to search for, e.g. "TODO:".
	Tag string

	// TargetPath is the file or directory to scan.
	TargetPath string

	// IncludeFunctions reports matches whose innermost enclosing
	// declaration is a function.
	IncludeFunctions bool

	// IncludeClasses reports matches whose innermost enclosing
	// declaration is a class.
	IncludeClasses bool

	// IgnorePatterns are gobwas/glob patterns (slash-separated, relative
	// to TargetPath) excluded from directory scans.
	IgnorePatterns []string

	// Extensions are the source file extensions considered during
	// directory scans (with leading dot). A single named file is scanned
	// regardless of its extension.
	Extensions []string

	// Quiet suppresses progress reporting.
	Quiet bool
}

// Validate checks the configuration once, before any file is read.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tag) == "" {
		return fmt.Errorf("tag must not be empty")
	}
	if c.TargetPath == "" {
		return fmt.Errorf("target path must not be empty")
	}
	if _, err := os.Stat(c.TargetPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, c.TargetPath)
		}
		return fmt.Errorf("stat %s: %w", c.TargetPath, err)
	}
	return nil
}

// IsSingleFile reports whether TargetPath names a regular file rather than a
// directory to walk.
func (c *Config) IsSingleFile() bool {
	info, err := os.Stat(c.TargetPath)
	return err == nil && !info.IsDir()
}

// TagMatch is one reported tag occurrence: the line it occurs on and the
// innermost declaration that encloses it.
type TagMatch struct {
	// FilePath is relative to the scan base (the target directory, or the
	// named file's parent).
	FilePath string

	// DeclName is the enclosing declaration's name, empty for module scope.
	DeclName string

	// Kind is function, class, or module.
	Kind DeclKind

	// LineNumber is the 1-based line the tag text occurs on, within the
	// original file. It is not the declaration's start line.
	LineNumber int

	// Snippet is the exact source text of the matching line. Empty when
	// code capture is disabled.
	Snippet string
}

// FileResult holds the matches found in one scanned file, in line order.
type FileResult struct {
	FilePath string
	Matches  []TagMatch
}

// SkippedFile records a file that was attempted but contributed no matches
// because it could not be read or parsed.
type SkippedFile struct {
	FilePath string
	Reason   string
}

// ExtractionResult is the complete, read-only output of one Extract call.
// FileResults preserve scan order; TotalMatches is a cached view that always
// equals the sum of per-file match counts.
type ExtractionResult struct {
	Config         Config
	FilesProcessed int
	SkippedFiles   []SkippedFile
	TotalMatches   int
	FileResults    []FileResult
}

// MatchesByFile returns the ordered file results that contain at least one
// match. Files with zero matches are counted in FilesProcessed but excluded
// from rendered views.
func (r *ExtractionResult) MatchesByFile() []FileResult {
	out := make([]FileResult, 0, len(r.FileResults))
	for _, fr := range r.FileResults {
		if len(fr.Matches) > 0 {
			out = append(out, fr)
		}
	}
	return out
}

// AllMatches returns every match in result order (file scan order, then line
// order within each file).
func (r *ExtractionResult) AllMatches() []TagMatch {
	out := make([]TagMatch, 0, r.TotalMatches)
	for _, fr := range r.FileResults {
		out = append(out, fr.Matches...)
	}
	return out
}
