package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Extractor:
// - Directory scan: tag in a function body yields file/name/kind/line
// - Every eligible file is visited exactly once, in deterministic order
// - Repeated runs on unchanged input yield identical results
// - TotalMatches equals the sum of per-file match counts
// - Malformed file among N: other N-1 files still report, FilesProcessed == N
// - Skipped files carry the parse failure reason
// - Files without the tag are not parsed and contribute zero matches
// - Missing path and empty directory fail before any file is read
// - Nil reporter and quiet mode both fall back to the no-op reporter
// - Progress reporter receives start/per-file/error/complete events
// - Context cancellation stops the scan

func newTestExtractor(t *testing.T, cfg Config, reporter ProgressReporter) *Extractor {
	t.Helper()
	ext, err := New(cfg, reporter)
	require.NoError(t, err)
	return ext
}

func TestExtract_FunctionTagScenario(t *testing.T) {
	t.Parallel()

	// pkg/a.py with "# TODO: x" on line 10 inside function foo.
	pkg := t.TempDir()
	content := strings.Repeat("# padding\n", 7) +
		"\n" + // line 8
		"def foo():\n" + // line 9
		"    # TODO: x\n" + // line 10
		"    pass\n"
	writeFile(t, filepath.Join(pkg, "a.py"), content)

	ext := newTestExtractor(t, Config{
		Tag:              "TODO:",
		TargetPath:       pkg,
		IncludeFunctions: true,
		IncludeClasses:   true,
	}, nil)

	result, err := ext.Extract(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalMatches)
	require.Len(t, result.FileResults, 1)
	match := result.FileResults[0].Matches[0]
	assert.Equal(t, "a.py", match.FilePath)
	assert.Equal(t, "foo", match.DeclName)
	assert.Equal(t, KindFunction, match.Kind)
	assert.Equal(t, 10, match.LineNumber)
	assert.Equal(t, "    # TODO: x", match.Snippet)
}

func TestExtract_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"z.py", "a.py", "m.py"} {
		writeFile(t, filepath.Join(dir, name),
			"def f():\n    # TODO: in "+name+"\n    pass\n")
	}

	cfg := Config{Tag: "TODO:", TargetPath: dir, IncludeFunctions: true, IncludeClasses: true}

	first, err := newTestExtractor(t, cfg, nil).Extract(context.Background())
	require.NoError(t, err)
	second, err := newTestExtractor(t, cfg, nil).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)

	require.Len(t, first.FileResults, 3)
	assert.Equal(t, "a.py", first.FileResults[0].FilePath)
	assert.Equal(t, "m.py", first.FileResults[1].FilePath)
	assert.Equal(t, "z.py", first.FileResults[2].FilePath)
}

func TestExtract_TotalMatchesEqualsSum(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"),
		"def f():\n    # TODO: one\n    # TODO: two\n    pass\n")
	writeFile(t, filepath.Join(dir, "b.py"),
		"# TODO: module level\n")
	writeFile(t, filepath.Join(dir, "c.py"),
		"def g():\n    pass\n")

	result, err := newTestExtractor(t, Config{
		Tag: "TODO:", TargetPath: dir, IncludeFunctions: true, IncludeClasses: true,
	}, nil).Extract(context.Background())
	require.NoError(t, err)

	sum := 0
	for _, fr := range result.FileResults {
		sum += len(fr.Matches)
	}
	assert.Equal(t, sum, result.TotalMatches)
	assert.Equal(t, 3, result.TotalMatches)

	// c.py has no matches: counted as processed, absent from the results.
	assert.Equal(t, 3, result.FilesProcessed)
	assert.Len(t, result.FileResults, 2)
}

func TestExtract_MalformedFileDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good1.py"),
		"def f():\n    # TODO: f\n    pass\n")
	// The broken file contains the tag, so it reaches the parser and fails.
	writeFile(t, filepath.Join(dir, "broken.py"),
		"def broken(:\n    # TODO: unreachable\n")
	writeFile(t, filepath.Join(dir, "good2.py"),
		"def g():\n    # TODO: g\n    pass\n")

	result, err := newTestExtractor(t, Config{
		Tag: "TODO:", TargetPath: dir, IncludeFunctions: true, IncludeClasses: true,
	}, nil).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesProcessed)
	assert.Equal(t, 2, result.TotalMatches)

	require.Len(t, result.SkippedFiles, 1)
	assert.Equal(t, "broken.py", result.SkippedFiles[0].FilePath)
	assert.NotEmpty(t, result.SkippedFiles[0].Reason)

	var files []string
	for _, fr := range result.FileResults {
		files = append(files, fr.FilePath)
	}
	assert.Equal(t, []string{"good1.py", "good2.py"}, files)
}

func TestExtract_PathNotFound(t *testing.T) {
	t.Parallel()

	_, err := New(Config{
		Tag:        "TODO:",
		TargetPath: filepath.Join(t.TempDir(), "nope"),
	}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestExtract_EmptyDirectory(t *testing.T) {
	t.Parallel()

	ext := newTestExtractor(t, Config{Tag: "TODO:", TargetPath: t.TempDir()}, nil)
	_, err := ext.Extract(context.Background())
	assert.ErrorIs(t, err, ErrNoFilesFound)
}

func TestExtract_EmptyTagRejected(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Tag: "  ", TargetPath: t.TempDir()}, nil)
	require.Error(t, err)
}

// recordingReporter captures progress events for assertions.
type recordingReporter struct {
	started   int
	scanned   []string
	parseErrs []string
	completed bool
}

func (r *recordingReporter) OnScanStart(totalFiles int)        { r.started = totalFiles }
func (r *recordingReporter) OnFileScanned(path string, _ int)  { r.scanned = append(r.scanned, path) }
func (r *recordingReporter) OnParseError(path string, _ error) { r.parseErrs = append(r.parseErrs, path) }
func (r *recordingReporter) OnScanComplete(*ExtractionResult)  { r.completed = true }

func TestExtract_ReportsProgress(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "def f():\n    # TODO: a\n    pass\n")
	writeFile(t, filepath.Join(dir, "broken.py"), "def broken(:\n    # TODO: b\n")

	reporter := &recordingReporter{}
	result, err := newTestExtractor(t, Config{
		Tag: "TODO:", TargetPath: dir, IncludeFunctions: true, IncludeClasses: true,
	}, reporter).Extract(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 2, reporter.started)
	assert.Equal(t, []string{"a.py", "broken.py"}, reporter.scanned)
	assert.Equal(t, []string{"broken.py"}, reporter.parseErrs)
	assert.True(t, reporter.completed)
}

func TestExtract_QuietSuppressesReporter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "# TODO: x\n")

	reporter := &recordingReporter{}
	_, err := newTestExtractor(t, Config{
		Tag: "TODO:", TargetPath: dir, Quiet: true,
		IncludeFunctions: true, IncludeClasses: true,
	}, reporter).Extract(context.Background())
	require.NoError(t, err)

	assert.Zero(t, reporter.started)
	assert.Empty(t, reporter.scanned)
	assert.False(t, reporter.completed)
}

func TestExtract_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("f%d.py", i)), "# TODO: x\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExtractor(t, Config{
		Tag: "TODO:", TargetPath: dir, IncludeFunctions: true, IncludeClasses: true,
	}, nil).Extract(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtract_SingleFileRelativeToParent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "solo.py")
	writeFile(t, target, "# TODO: solo\n")

	result, err := newTestExtractor(t, Config{
		Tag: "TODO:", TargetPath: target, IncludeFunctions: true, IncludeClasses: true,
	}, nil).Extract(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalMatches)
	assert.Equal(t, "solo.py", result.FileResults[0].FilePath)
	assert.Equal(t, KindModule, result.FileResults[0].Matches[0].Kind)
}
