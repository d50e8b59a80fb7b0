package matching

import "github.com/kbecker21/tt-csv-matcher/feature/roster/models"

// Tier identifies the matching strategy that produced a result, in strict
// priority order: exact beats name-swap beats fuzzy beats none.
type Tier string

const (
	// TierExact means last and first name matched exactly after normalization.
	TierExact Tier = "exact"
	// TierNameSwap means the event record carries first and last name swapped.
	TierNameSwap Tier = "name-swap"
	// TierFuzzy means the names matched above the configured similarity threshold.
	TierFuzzy Tier = "fuzzy"
	// TierNone means no reference record matched.
	TierNone Tier = "none"
)

// Issue names a secondary discrepancy detected once a name-level match exists.
type Issue string

const (
	// IssueDoBMoBSwap flags transposed day and month of birth.
	IssueDoBMoBSwap Issue = "dob-mob-swap"
	// IssueDoBMismatch flags a differing day of birth (when not a swap).
	IssueDoBMismatch Issue = "dob-mismatch"
	// IssueMoBMismatch flags a differing month of birth (when not a swap).
	IssueMoBMismatch Issue = "mob-mismatch"
	// IssueSexMismatch flags a differing sex code.
	IssueSexMismatch Issue = "sex-mismatch"
	// IssueNationalityMismatch flags a differing association code.
	IssueNationalityMismatch Issue = "nationality-mismatch"
	// IssueBirthYearMismatch flags a differing year of birth.
	IssueBirthYearMismatch Issue = "birth-year-mismatch"
	// IssueNoMatch marks records without any reference counterpart.
	IssueNoMatch Issue = "no-match"
)

// Outcome is the raw result of matching one event record against the
// reference set. Ref holds a copy of the selected reference record and is
// nil for TierNone. Similarity carries the combined name similarity that
// decided the fuzzy tier; it is 1.0 for exact and name-swap matches and
// 0.0 for no match.
type Outcome struct {
	Event      models.Player  `json:"event"`
	Ref        *models.Player `json:"ref,omitempty"`
	Tier       Tier           `json:"tier"`
	Similarity float64        `json:"similarity"`
}

// Result is the final per-record verdict handed to reporting: the match
// outcome plus a confidence score in [0.0, 1.0] and the ordered set of
// detected issues. It is immutable once constructed.
type Result struct {
	Outcome
	Confidence float64 `json:"confidence"`
	Issues     []Issue `json:"issues"`
}

// HasIssue reports whether the result carries the given issue.
func (r Result) HasIssue(issue Issue) bool {
	for _, i := range r.Issues {
		if i == issue {
			return true
		}
	}
	return false
}
