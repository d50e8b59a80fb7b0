package report

import (
	"fmt"
	"io"

	"github.com/kbecker21/tt-csv-matcher/feature/matching"
)

// WriteSummary prints a human-readable summary of a result set.
func WriteSummary(w io.Writer, results []matching.Result, eventName string) {
	s := matching.ComputeStats(results)

	fmt.Fprintf(w, "\n=== Match Report: %s ===\n", eventName)
	fmt.Fprintf(w, "Total event entries:     %5d\n", s.Total)
	fmt.Fprintf(w, "Exact matches:           %5d\n", s.Exact)
	fmt.Fprintf(w, "Name swaps detected:     %5d\n", s.NameSwap)
	fmt.Fprintf(w, "Fuzzy matches:           %5d\n", s.Fuzzy)
	fmt.Fprintf(w, "Day/month swapped:       %5d\n", s.DoBMoBSwapped)
	fmt.Fprintf(w, "No match found:          %5d\n", s.None)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Records with issues:     %5d\n", s.IssuesTotal)
	fmt.Fprintf(w, "  - Day wrong:           %5d\n", s.DoBMismatch)
	fmt.Fprintf(w, "  - Month wrong:         %5d\n", s.MoBMismatch)
	fmt.Fprintf(w, "  - Year wrong:          %5d\n", s.BirthYearMismatch)
	fmt.Fprintf(w, "  - Nationality wrong:   %5d\n", s.NationalityMismatch)
	fmt.Fprintf(w, "  - Sex wrong:           %5d\n", s.SexMismatch)
	fmt.Fprintln(w)
}
