package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Extractor orchestrates one scan: resolve the source set, walk each file's
// declarations, match tags, and assemble the result.
type Extractor struct {
	config   Config
	resolver *sourceResolver
	walker   *declarationWalker
	matcher  *tagMatcher
	reporter ProgressReporter
}

// New creates an extractor for the given configuration. The configuration is
// validated once here; Extract never mutates it.
func New(cfg Config, reporter ProgressReporter) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver, err := newSourceResolver(cfg.IgnorePatterns, cfg.Extensions)
	if err != nil {
		return nil, err
	}

	if reporter == nil || cfg.Quiet {
		reporter = NoopReporter{}
	}

	return &Extractor{
		config:   cfg,
		resolver: resolver,
		walker:   newDeclarationWalker(),
		matcher:  newTagMatcher(cfg),
		reporter: reporter,
	}, nil
}

// Extract runs the scan. It is idempotent and side-effect-free beyond
// read-only filesystem access: calling it twice on unchanged input yields an
// identical result, files in identical order.
//
// A file that cannot be read or parsed contributes zero matches and is
// recorded in SkippedFiles; it never aborts the batch. Only a missing target
// path or an empty directory scan fails the whole run.
func (e *Extractor) Extract(ctx context.Context) (*ExtractionResult, error) {
	files, baseDir, err := e.resolver.Resolve(e.config.TargetPath)
	if err != nil {
		return nil, err
	}

	result := &ExtractionResult{
		Config:      e.config,
		FileResults: make([]FileResult, 0, len(files)),
	}

	e.reporter.OnScanStart(len(files))

	for _, filePath := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		relPath := relativeTo(baseDir, filePath)
		matches := e.scanFile(filePath, relPath, result)
		result.FilesProcessed++

		if len(matches) > 0 {
			result.FileResults = append(result.FileResults, FileResult{
				FilePath: relPath,
				Matches:  matches,
			})
			result.TotalMatches += len(matches)
		}

		e.reporter.OnFileScanned(relPath, len(matches))
	}

	e.reporter.OnScanComplete(result)
	return result, nil
}

// scanFile reads, parses, and matches one file. Read and parse failures are
// reported and recorded as skips; they surface through the progress channel
// only, never as a hard error.
func (e *Extractor) scanFile(filePath, relPath string, result *ExtractionResult) []TagMatch {
	source, err := os.ReadFile(filePath)
	if err != nil {
		e.skip(result, relPath, err)
		return nil
	}

	// Cheap pre-check: parsing is pointless when the tag never occurs.
	if !strings.Contains(string(source), e.config.Tag) {
		return nil
	}

	decls, err := e.walker.Walk(relPath, source)
	if err != nil {
		e.skip(result, relPath, err)
		return nil
	}

	return e.matcher.Match(relPath, splitLines(source), decls)
}

func (e *Extractor) skip(result *ExtractionResult, relPath string, err error) {
	var parseErr *ParseError
	reason := err.Error()
	if errors.As(err, &parseErr) {
		reason = parseErr.Err.Error()
	}
	result.SkippedFiles = append(result.SkippedFiles, SkippedFile{
		FilePath: relPath,
		Reason:   reason,
	})
	e.reporter.OnParseError(relPath, err)
}

// relativeTo reports path relative to base with forward slashes, falling
// back to the original path when it lies outside base.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
