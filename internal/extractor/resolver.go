package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultIgnorePatterns excludes VCS metadata, virtualenvs, and dependency
// directories from directory scans so third-party code is never reported.
var DefaultIgnorePatterns = []string{
	".git/**",
	".hg/**",
	".svn/**",
	"__pycache__/**",
	".venv/**",
	"venv/**",
	".tox/**",
	"node_modules/**",
	"site-packages/**",
	"build/**",
	"dist/**",
	"*.egg-info/**",
}

// DefaultExtensions is the source extension set scanned in directory mode.
var DefaultExtensions = []string{".py"}

// compiledPattern holds both the pattern string and the compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// sourceResolver turns a target path into the ordered list of files to scan.
type sourceResolver struct {
	ignorePatterns []compiledPattern
	extensions     map[string]bool
}

func newSourceResolver(ignorePatterns, extensions []string) (*sourceResolver, error) {
	if len(ignorePatterns) == 0 {
		ignorePatterns = DefaultIgnorePatterns
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	r := &sourceResolver{extensions: make(map[string]bool, len(extensions))}
	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		r.ignorePatterns = append(r.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}
	for _, ext := range extensions {
		r.extensions[ext] = true
	}
	return r, nil
}

// Resolve returns the files to scan and the base directory match paths are
// reported relative to. A named file is returned as-is, regardless of
// extension filtering; a directory is walked recursively in lexicographic
// order so repeated runs produce identical output.
func (r *sourceResolver) Resolve(targetPath string) (files []string, baseDir string, err error) {
	info, err := os.Stat(targetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrPathNotFound, targetPath)
		}
		return nil, "", fmt.Errorf("stat %s: %w", targetPath, err)
	}

	if !info.IsDir() {
		return []string{targetPath}, filepath.Dir(targetPath), nil
	}

	err = filepath.Walk(targetPath, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(targetPath, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if fi.IsDir() {
			if relPath == "." {
				return nil
			}
			// Hidden directories (VCS metadata, tool state) are never scanned.
			if strings.HasPrefix(fi.Name(), ".") || r.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if r.shouldIgnore(relPath) {
			return nil
		}
		if !r.extensions[filepath.Ext(path)] {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("walk %s: %w", targetPath, err)
	}

	if len(files) == 0 {
		return nil, "", fmt.Errorf("%w under %s", ErrNoFilesFound, targetPath)
	}

	sort.Strings(files)
	return files, targetPath, nil
}

// shouldIgnore checks a slash-separated relative path against the ignore
// patterns. Directories are also tested with a /** suffix so a bare
// "node_modules" matches the pattern "node_modules/**".
func (r *sourceResolver) shouldIgnore(relPath string) bool {
	if r.matchesAny(relPath) {
		return true
	}
	if !strings.HasSuffix(relPath, "/**") {
		return r.matchesAny(relPath + "/**")
	}
	return false
}

func (r *sourceResolver) matchesAny(path string) bool {
	for _, cp := range r.ignorePatterns {
		if cp.glob.Match(path) {
			return true
		}
	}
	return false
}
