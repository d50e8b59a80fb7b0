package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbecker21/tt-csv-matcher/feature/matching"
	"github.com/kbecker21/tt-csv-matcher/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testResults(t *testing.T) []matching.Result {
	t.Helper()
	refs := []models.Player{
		{ExternID: "1", LastName: "Müller", FirstName: "Jan", Sex: "M", Association: "GER", DoB: 12, MoB: 5, YoB: 1990},
		{ExternID: "2", LastName: "Meier", FirstName: "Anna", Sex: "W", Association: "GER", DoB: 3, MoB: 7, YoB: 1995},
	}
	m, err := matching.NewMatcher(refs, matching.DefaultConfig())
	require.NoError(t, err)

	return m.MatchAll([]models.Player{
		{ExternID: "E1", LastName: "Müller", FirstName: "Jan", Sex: "W", Association: "GER", DoB: 12, MoB: 5, YoB: 1990},
		{ExternID: "E2", LastName: "Anna", FirstName: "Meier", Sex: "W", Association: "GER", DoB: 3, MoB: 7, YoB: 1995},
		{ExternID: "E3", LastName: "Ganz", FirstName: "Anders"},
	})
}

func TestWriteCSV(t *testing.T) {
	results := testResults(t)
	out := filepath.Join(t.TempDir(), "reports", "report.csv")

	require.NoError(t, WriteCSV(results, out, zap.NewNop()))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(raw, []byte("\uFEFF")), "report must carry a UTF-8 BOM for Excel")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(raw), "\uFEFF")), "\n")
	require.Len(t, lines, 4, "header plus one row per result")

	assert.Equal(t, strings.Join(Columns, ";"), lines[0])
	assert.Contains(t, lines[1], "sex-mismatch")
	assert.Contains(t, lines[1], "exact")
	assert.Contains(t, lines[2], "name-swap")
	assert.Contains(t, lines[3], "none")
	assert.Contains(t, lines[3], "no-match")

	// The unmatched row has empty reference columns.
	fields := strings.Split(lines[3], ";")
	require.Len(t, fields, len(Columns))
	assert.Equal(t, "", fields[8], "Ref_ExternID must be empty for no-match")
}

func TestWriteHTML(t *testing.T) {
	results := testResults(t)
	out := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, WriteHTML(results, out, "spring-open", zap.NewNop()))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "spring-open")
	assert.Contains(t, html, "Müller")
	assert.Contains(t, html, "tier-name-swap")
	assert.Contains(t, html, `class="issue"`)
	assert.Contains(t, html, "sex-mismatch")
}

func TestWriteSummary(t *testing.T) {
	results := testResults(t)

	var buf bytes.Buffer
	WriteSummary(&buf, results, "event.csv")

	out := buf.String()
	assert.Contains(t, out, "event.csv")
	assert.Contains(t, out, "Total event entries:         3")
	assert.Contains(t, out, "Exact matches:               1")
	assert.Contains(t, out, "Name swaps detected:         1")
	assert.Contains(t, out, "No match found:              1")
}
