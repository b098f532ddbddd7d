package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/tagex/internal/config"
	"github.com/mvp-joe/tagex/internal/extractor"
	"github.com/mvp-joe/tagex/internal/formatter"
)

var (
	tagFlag         string
	outputFlag      string
	formatFlag      string
	noFunctionsFlag bool
	noClassesFlag   bool
	tableFlag       bool
	noCodeFlag      bool
	quietFlag       bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <path>",
	Short: "Extract tagged locations from a file or directory",
	Long: `Extract scans the given file or directory for a literal tag and reports
each occurrence with its enclosing function or class and line number.

A named file is scanned as-is; a directory is walked recursively in
deterministic order, skipping VCS and dependency directories.

Examples:
  # Scan a single file
  tagex extract myfile.py --tag "TODO:"

  # Scan a directory
  tagex extract ./src --tag "AGENT-TODO:"

  # Scan and save a markdown report
  tagex extract ./src --tag "TODO:" --output todos.md

  # Functions only
  tagex extract ./src --tag "FIXME:" --no-classes

  # Table view
  tagex extract ./src --tag "TODO:" --table
`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&tagFlag, "tag", "t", "", "Tag to search for (default from config, TODO:)")
	extractCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to this file")
	extractCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Report format: markdown or plain")
	extractCmd.Flags().BoolVar(&noFunctionsFlag, "no-functions", false, "Exclude matches inside functions")
	extractCmd.Flags().BoolVar(&noClassesFlag, "no-classes", false, "Exclude matches inside classes")
	extractCmd.Flags().BoolVarP(&tableFlag, "table", "T", false, "Render results as a table")
	extractCmd.Flags().BoolVar(&noCodeFlag, "no-code", false, "Omit source snippets from output")
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress and summary output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load configuration from .tagex/config.yml (defaults + env overrides)
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	tag := cfg.Scan.Tag
	if tagFlag != "" {
		tag = tagFlag
	}

	formatName := cfg.Output.Format
	if formatFlag != "" {
		formatName = formatFlag
	}
	docFormat, err := formatter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	extractCfg := extractor.Config{
		Tag:              tag,
		TargetPath:       args[0],
		IncludeFunctions: !noFunctionsFlag,
		IncludeClasses:   !noClassesFlag,
		IgnorePatterns:   cfg.Scan.Ignore,
		Extensions:       cfg.Scan.Extensions,
		Quiet:            quietFlag,
	}

	showCode := cfg.Output.ShowCode && !noCodeFlag

	reporter := NewCLIProgressReporter(quietFlag, os.Stderr)
	ext, err := extractor.New(extractCfg, reporter)
	if err != nil {
		return err
	}

	result, err := ext.Extract(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("extraction cancelled")
		}
		return err
	}

	if tableFlag {
		fmt.Print(formatter.RenderTable(result, showCode))
	} else {
		fmt.Print(formatter.RenderTree(result, showCode))
	}

	if outputFlag != "" {
		if err := formatter.Save(result, outputFlag, docFormat, showCode); err != nil {
			return err
		}
		if !quietFlag {
			fmt.Fprintf(os.Stderr, "Report saved to %s\n", outputFlag)
		}
	}

	return nil
}
