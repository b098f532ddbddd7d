package extractor

// ProgressReporter receives scan lifecycle events. The extractor calls it
// between files only; implementations need not be safe for concurrent use.
type ProgressReporter interface {
	// OnScanStart is called once, after the source set has been resolved.
	OnScanStart(totalFiles int)

	// OnFileScanned is called after each file, parseable or not.
	OnFileScanned(filePath string, matches int)

	// OnParseError is called for files that could not be read or parsed.
	// The scan continues; the file is recorded as skipped.
	OnParseError(filePath string, err error)

	// OnScanComplete is called once with the fully assembled result.
	OnScanComplete(result *ExtractionResult)
}

// NoopReporter satisfies ProgressReporter without producing output. It backs
// quiet mode and is the default when no reporter is injected.
type NoopReporter struct{}

func (NoopReporter) OnScanStart(int)                  {}
func (NoopReporter) OnFileScanned(string, int)        {}
func (NoopReporter) OnParseError(string, error)       {}
func (NoopReporter) OnScanComplete(*ExtractionResult) {}
