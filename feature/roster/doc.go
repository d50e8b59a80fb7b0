// Package roster loads player rosters from tab-separated files.
//
// Two kinds of files are read with the same routine: the trusted reference
// roster and the per-event entry lists that get reconciled against it.
//
// # Encoding
//
// Export tools in the wild produce both UTF-16LE (with BOM) and UTF-8
// files. The reader sniffs the BOM and decodes accordingly, so callers
// never deal with encodings.
//
// # Robustness
//
//   - Header names and field values are whitespace-normalized, including
//     Unicode whitespace such as U+2006.
//   - Rows with malformed birth data are skipped with a warning; a single
//     bad row never aborts a run.
//   - Missing required columns are a hard error, reported with the full
//     list of absent names.
package roster
