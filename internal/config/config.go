package config

import "github.com/mvp-joe/tagex/internal/extractor"

// Config represents the complete tagex configuration.
// It can be loaded from .tagex/config.yml with environment variable overrides.
type Config struct {
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// ScanConfig controls what is searched for and where.
type ScanConfig struct {
	Tag        string   `yaml:"tag" mapstructure:"tag"`               // default tag, e.g. "TODO:"
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // source extensions scanned in directory mode
	Ignore     []string `yaml:"ignore" mapstructure:"ignore"`         // glob patterns excluded from directory scans
}

// OutputConfig controls the default rendering of results.
type OutputConfig struct {
	Format   string `yaml:"format" mapstructure:"format"`       // "markdown" or "plain" for saved reports
	ShowCode bool   `yaml:"show_code" mapstructure:"show_code"` // include source snippets in output
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Tag:        "TODO:",
			Extensions: extractor.DefaultExtensions,
			Ignore:     extractor.DefaultIgnorePatterns,
		},
		Output: OutputConfig{
			Format:   "markdown",
			ShowCode: true,
		},
	}
}
