package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/tagex/internal/extractor"
)

// CLIProgressReporter implements extractor.ProgressReporter with a progress
// bar on stderr. In quiet mode every callback is a no-op.
type CLIProgressReporter struct {
	quiet          bool
	out            io.Writer
	fileBar        *progressbar.ProgressBar
	totalFiles     int
	processedFiles int
	startTime      time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter writing to out.
func NewCLIProgressReporter(quiet bool, out io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		out:       out,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnScanStart(totalFiles int) {
	if c.quiet {
		return
	}
	c.totalFiles = totalFiles
	c.processedFiles = 0

	c.fileBar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Scanning files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.out)
		}),
	)
}

func (c *CLIProgressReporter) OnFileScanned(filePath string, matches int) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		c.processedFiles++
		c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnParseError(filePath string, err error) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		c.fileBar.Clear()
	}
	fmt.Fprintf(c.out, "skipping %s: %v\n", filePath, err)
}

func (c *CLIProgressReporter) OnScanComplete(result *extractor.ExtractionResult) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		c.fileBar.Finish()
		c.fileBar = nil
	}

	fmt.Fprintf(c.out, "✓ Scan complete: %d match(es) in %d file(s) (took %.1fs)\n",
		result.TotalMatches, result.FilesProcessed, time.Since(c.startTime).Seconds())
	if len(result.SkippedFiles) > 0 {
		fmt.Fprintf(c.out, "  Skipped %d file(s) with parse errors\n", len(result.SkippedFiles))
	}
}
