package formatter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/tagex/internal/extractor"
)

// ErrWrite marks an output file that could not be written. It is fatal for
// the save step only; the in-memory result and any terminal rendering remain
// valid.
var ErrWrite = errors.New("write report")

// Save renders the document and writes it to destPath, creating parent
// directories as needed. I/O failures are wrapped with ErrWrite and returned
// to the caller, never retried.
func Save(result *extractor.ExtractionResult, destPath string, format DocumentFormat, showCode bool) error {
	content := RenderDocument(result, format, showCode)

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, destPath, err)
		}
	}

	if err := os.WriteFile(destPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, destPath, err)
	}

	return nil
}
