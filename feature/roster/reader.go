package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kbecker21/tt-csv-matcher/feature/roster/models"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// requiredColumns are the header names every roster file must carry.
var requiredColumns = []string{
	"Extern ID",
	"Last Name",
	"First Name",
	"Sex",
	"Association",
	"DoB",
	"MoB",
	"YoB",
}

// NormalizeWhitespace collapses any run of whitespace (including Unicode
// whitespace like U+2006) into a single space and trims the ends.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// decode converts raw file bytes into text. Files starting with an FF FE
// byte order mark are decoded as UTF-16LE; everything else is treated as
// UTF-8 with an optional BOM.
func decode(raw []byte) (string, error) {
	if len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xFE {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return "", fmt.Errorf("failed to decode UTF-16LE content: %w", err)
		}
		return string(out), nil
	}
	return strings.TrimPrefix(string(raw), "\uFEFF"), nil
}

// ReadPlayers reads player records from a tab-separated roster file.
// UTF-16LE (with BOM) and UTF-8 encoded files are handled automatically.
// Malformed rows are skipped with a warning instead of aborting the read.
func ReadPlayers(path string, logg *zap.Logger) ([]models.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	players, err := readPlayers(bytes.NewReader(raw), path, logg)
	if err != nil {
		return nil, err
	}

	logg.Info("Roster loaded",
		zap.String("file", path),
		zap.Int("players", len(players)),
	)
	return players, nil
}

// ReadPlayersFrom reads player records from an already-open source, e.g.
// an uploaded file in serve mode. The name is only used in diagnostics.
func ReadPlayersFrom(r io.Reader, name string, logg *zap.Logger) ([]models.Player, error) {
	return readPlayers(r, name, logg)
}

func readPlayers(r io.Reader, name string, logg *zap.Logger) ([]models.Player, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	content, err := decode(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("file %s is empty or has no header row", name)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[NormalizeWhitespace(col)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing columns in %s: %s", name, strings.Join(missing, ", "))
	}

	field := func(row []string, col string) string {
		idx := colIndex[col]
		if idx >= len(row) {
			return ""
		}
		return NormalizeWhitespace(row[idx])
	}

	var players []models.Player
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logg.Warn("Skipping unreadable row",
				zap.Int("row", rowNum),
				zap.String("file", name),
				zap.Error(err),
			)
			continue
		}

		dob, err1 := parseBirthField(field(row, "DoB"))
		mob, err2 := parseBirthField(field(row, "MoB"))
		yob, err3 := parseBirthField(field(row, "YoB"))
		if err1 != nil || err2 != nil || err3 != nil {
			logg.Warn("Skipping row with malformed birth data",
				zap.Int("row", rowNum),
				zap.String("file", name),
			)
			continue
		}

		players = append(players, models.Player{
			ExternID:    field(row, "Extern ID"),
			LastName:    field(row, "Last Name"),
			FirstName:   field(row, "First Name"),
			Sex:         field(row, "Sex"),
			Association: field(row, "Association"),
			DoB:         dob,
			MoB:         mob,
			YoB:         yob,
		})
	}

	return players, nil
}

// parseBirthField parses a numeric birth field. Empty means unknown (zero).
func parseBirthField(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
