package matching

import (
	"math"

	"github.com/kbecker21/tt-csv-matcher/feature/roster/models"
)

// Base confidence per tier.
const (
	confidenceExact    = 1.0
	confidenceNameSwap = 0.9
	confidenceNone     = 0.0
)

// score converts a match outcome into the final verdict: base confidence
// from the tier rule table, minus a fixed penalty per detected issue,
// floored at 0.0. The fuzzy tier passes the raw combined similarity
// through as its base.
func (m *Matcher) score(out Outcome) Result {
	if out.Tier == TierNone {
		return Result{
			Outcome:    out,
			Confidence: confidenceNone,
			Issues:     []Issue{IssueNoMatch},
		}
	}

	var base float64
	switch out.Tier {
	case TierExact:
		base = confidenceExact
	case TierNameSwap:
		base = confidenceNameSwap
	case TierFuzzy:
		base = out.Similarity
	}

	issues := detectIssues(out.Event, *out.Ref)

	confidence := base - float64(len(issues))*m.cfg.IssuePenalty
	if confidence < 0.0 {
		confidence = 0.0
	}

	return Result{
		Outcome:    out,
		Confidence: round4(confidence),
		Issues:     issues,
	}
}

// detectIssues layers the secondary checks onto an established name-level
// match. The order is fixed so report output is deterministic across
// runs: birth-field swap (or the individual day/month mismatches), then
// sex, nationality, and birth year. A field missing on either side is
// treated as not mismatched — absence of evidence, not evidence of
// mismatch.
func detectIssues(event, ref models.Player) []Issue {
	issues := []Issue{}

	if DoBMoBSwapped(event, ref) {
		issues = append(issues, IssueDoBMoBSwap)
	} else {
		if event.DoB != 0 && ref.DoB != 0 && event.DoB != ref.DoB {
			issues = append(issues, IssueDoBMismatch)
		}
		if event.MoB != 0 && ref.MoB != 0 && event.MoB != ref.MoB {
			issues = append(issues, IssueMoBMismatch)
		}
	}

	if evSex, refSex := NormalizeField(event.Sex), NormalizeField(ref.Sex); evSex != "" && refSex != "" && evSex != refSex {
		issues = append(issues, IssueSexMismatch)
	}

	if evAssoc, refAssoc := NormalizeField(event.Association), NormalizeField(ref.Association); evAssoc != "" && refAssoc != "" && evAssoc != refAssoc {
		issues = append(issues, IssueNationalityMismatch)
	}

	if event.YoB != 0 && ref.YoB != 0 && event.YoB != ref.YoB {
		issues = append(issues, IssueBirthYearMismatch)
	}

	return issues
}

// round4 keeps confidence values stable for reporting.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
