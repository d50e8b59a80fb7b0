// Package report renders match results for human consumption.
//
// Three output formats are provided:
//
//   - CSV: semicolon-delimited, UTF-8 with BOM, one row per event record
//     with the event fields, the matched reference fields, tier,
//     confidence and issue list. The BOM/delimiter combination keeps the
//     files openable in German Excel without an import dialog.
//   - HTML: a standalone page rendered from an embedded template, with
//     per-tier row coloring and per-issue cell highlighting.
//   - Summary: per-tier and per-issue counts written to any io.Writer.
//
// The package consumes matching.Result values and never feeds anything
// back into the engine.
package report
