package matching

import "strings"

// NormalizeField canonicalizes a raw text field for comparison: leading
// and trailing whitespace is removed, internal whitespace runs (including
// Unicode whitespace) collapse to a single space, and the result is
// upper-cased. The function is idempotent and never fails; empty input
// normalizes to the empty string.
//
// Diacritics are deliberately preserved: folding them would turn typo
// candidates like "Muller" vs "Müller" into exact matches and hide the
// discrepancy from the report.
func NormalizeField(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), " "))
}
