package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kbecker21/tt-csv-matcher/feature/matching"

	"go.uber.org/zap"
)

// Columns is the fixed column layout of the CSV report.
var Columns = []string{
	"Event_ExternID",
	"Event_LastName",
	"Event_FirstName",
	"Event_Sex",
	"Event_Association",
	"Event_DoB",
	"Event_MoB",
	"Event_YoB",
	"Ref_ExternID",
	"Ref_LastName",
	"Ref_FirstName",
	"Ref_Sex",
	"Ref_Association",
	"Ref_DoB",
	"Ref_MoB",
	"Ref_YoB",
	"Match_Tier",
	"Confidence",
	"Issues",
}

// resultRow flattens a match result into the report column layout.
func resultRow(r matching.Result) []string {
	ev := r.Event

	row := []string{
		ev.ExternID,
		ev.LastName,
		ev.FirstName,
		ev.Sex,
		ev.Association,
		strconv.Itoa(ev.DoB),
		strconv.Itoa(ev.MoB),
		strconv.Itoa(ev.YoB),
	}

	if ref := r.Ref; ref != nil {
		row = append(row,
			ref.ExternID,
			ref.LastName,
			ref.FirstName,
			ref.Sex,
			ref.Association,
			strconv.Itoa(ref.DoB),
			strconv.Itoa(ref.MoB),
			strconv.Itoa(ref.YoB),
		)
	} else {
		row = append(row, "", "", "", "", "", "", "", "")
	}

	issues := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		issues = append(issues, string(issue))
	}

	return append(row,
		string(r.Tier),
		fmt.Sprintf("%.4f", r.Confidence),
		strings.Join(issues, ", "),
	)
}

// WriteCSV writes match results as a CSV report. The file uses UTF-8 with
// BOM and a semicolon delimiter for compatibility with German Excel.
func WriteCSV(results []matching.Result, outputPath string, logg *zap.Logger) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", outputPath, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\uFEFF"); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(resultRow(r)); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	logg.Info("CSV report written",
		zap.String("file", outputPath),
		zap.Int("rows", len(results)),
	)
	return nil
}
