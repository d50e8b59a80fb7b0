package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/kbecker21/tt-csv-matcher/feature/matching"

	"go.uber.org/zap"
)

//go:embed templates/report.html
var templateFS embed.FS

// htmlData is the view model handed to the report template.
type htmlData struct {
	EventName   string
	GeneratedAt string
	Stats       matching.Stats
	Results     []matching.Result
}

var htmlFuncs = template.FuncMap{
	"hasIssue": func(r matching.Result, name string) bool {
		return r.HasIssue(matching.Issue(name))
	},
	"confidence": func(r matching.Result) string {
		return fmt.Sprintf("%.4f", r.Confidence)
	},
}

// WriteHTML writes match results as a standalone HTML report.
func WriteHTML(results []matching.Result, outputPath, eventName string, logg *zap.Logger) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmpl, err := template.New("report.html").Funcs(htmlFuncs).ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", outputPath, err)
	}
	defer f.Close()

	data := htmlData{
		EventName:   eventName,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Stats:       matching.ComputeStats(results),
		Results:     results,
	}

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	logg.Info("HTML report written", zap.String("file", outputPath))
	return nil
}
