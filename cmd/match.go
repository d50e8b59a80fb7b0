package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbecker21/tt-csv-matcher/core/config"
	"github.com/kbecker21/tt-csv-matcher/core/logger"
	"github.com/kbecker21/tt-csv-matcher/feature/matching"
	"github.com/kbecker21/tt-csv-matcher/feature/report"
	"github.com/kbecker21/tt-csv-matcher/feature/roster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	refPath        string
	eventPath      string
	eventDir       string
	outputPath     string
	outputDir      string
	htmlReport     bool
	printSummary   bool
	fuzzyThreshold float64
)

// matchCmd reconciles one event file (or a directory of them) against the
// reference roster and writes a report per event file.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match event rosters against the reference database",
	Long: `Match event rosters against the reference database.

Reads the reference roster once, then matches each event file against it.
Every event record is classified into a match tier (exact, name-swap,
fuzzy, none) with a confidence score and a list of detected issues.

Examples:
  # Single event file
  tt-csv-matcher match --ref ref.csv --event event.csv --output report.csv

  # Batch mode over a directory
  tt-csv-matcher match --ref ref.csv --event-dir events/ --output-dir reports/

  # With HTML report and stdout summary
  tt-csv-matcher match --ref ref.csv --event event.csv --output report.csv --html --summary`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&refPath, "ref", "", "Path to the reference roster file")
	matchCmd.Flags().StringVar(&eventPath, "event", "", "Path to a single event file")
	matchCmd.Flags().StringVar(&eventDir, "event-dir", "", "Directory of event files (batch mode)")
	matchCmd.Flags().StringVar(&outputPath, "output", "", "Path for the report output (CSV)")
	matchCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for report outputs (batch mode)")
	matchCmd.Flags().BoolVar(&htmlReport, "html", false, "Additionally write an HTML report")
	matchCmd.Flags().BoolVar(&printSummary, "summary", false, "Print a summary to stdout")
	matchCmd.Flags().Float64Var(&fuzzyThreshold, "fuzzy-threshold", 0, "Threshold for fuzzy matching (default from config: 0.85)")
	_ = matchCmd.MarkFlagRequired("ref")

	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if eventPath == "" && eventDir == "" {
		return fmt.Errorf("either --event or --event-dir must be given")
	}
	if eventPath != "" && outputPath == "" {
		return fmt.Errorf("--output is required when using --event")
	}
	if eventDir != "" && outputDir == "" {
		return fmt.Errorf("--output-dir is required when using --event-dir")
	}

	matchCfg := cfg.Matching
	if cmd.Flags().Changed("fuzzy-threshold") {
		matchCfg.FuzzyThreshold = fuzzyThreshold
	}

	refs, err := roster.ReadPlayers(refPath, l)
	if err != nil {
		return err
	}

	matcher, err := matching.NewMatcher(refs, matchCfg)
	if err != nil {
		return err
	}

	if eventPath != "" {
		return processEvent(matcher, eventPath, outputPath, l)
	}

	return processEventDir(matcher, eventDir, outputDir, l)
}

// processEvent matches a single event file and writes its reports.
func processEvent(matcher *matching.Matcher, eventFile, output string, l *zap.Logger) error {
	events, err := roster.ReadPlayers(eventFile, l)
	if err != nil {
		return err
	}

	results := matcher.MatchAll(events)

	if err := report.WriteCSV(results, output, l); err != nil {
		return err
	}

	if htmlReport {
		htmlPath := strings.TrimSuffix(output, filepath.Ext(output)) + ".html"
		if err := report.WriteHTML(results, htmlPath, stem(eventFile), l); err != nil {
			return err
		}
	}

	if printSummary {
		report.WriteSummary(os.Stdout, results, filepath.Base(eventFile))
	}

	return nil
}

// processEventDir matches every *.csv in the directory, excluding the
// reference file itself, and writes one report per event file.
func processEventDir(matcher *matching.Matcher, dir, outDir string, l *zap.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("failed to list event files: %w", err)
	}

	refAbs, err := filepath.Abs(refPath)
	if err != nil {
		return err
	}

	var eventFiles []string
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		if abs != refAbs {
			eventFiles = append(eventFiles, f)
		}
	}

	if len(eventFiles) == 0 {
		l.Warn("No event files found", zap.String("dir", dir))
		return nil
	}

	for _, eventFile := range eventFiles {
		output := filepath.Join(outDir, "report_"+stem(eventFile)+".csv")
		l.Info("Processing event file", zap.String("file", filepath.Base(eventFile)))
		if err := processEvent(matcher, eventFile, output, l); err != nil {
			return err
		}
	}

	return nil
}

// stem returns the file name without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
