package matching

// Stats aggregates per-tier and per-issue counts over a result set.
type Stats struct {
	Total               int `json:"total"`
	Exact               int `json:"exact"`
	NameSwap            int `json:"name_swap"`
	Fuzzy               int `json:"fuzzy"`
	None                int `json:"none"`
	DoBMoBSwapped       int `json:"dob_mob_swapped"`
	DoBMismatch         int `json:"dob_mismatch"`
	MoBMismatch         int `json:"mob_mismatch"`
	SexMismatch         int `json:"sex_mismatch"`
	NationalityMismatch int `json:"nationality_mismatch"`
	BirthYearMismatch   int `json:"birth_year_mismatch"`
	// IssuesTotal counts matched records carrying at least one issue.
	IssuesTotal int `json:"issues_total"`
}

// ComputeStats derives summary statistics from an ordered result set.
func ComputeStats(results []Result) Stats {
	var s Stats
	s.Total = len(results)

	for _, r := range results {
		switch r.Tier {
		case TierExact:
			s.Exact++
		case TierNameSwap:
			s.NameSwap++
		case TierFuzzy:
			s.Fuzzy++
		case TierNone:
			s.None++
		}

		if r.Tier != TierNone && len(r.Issues) > 0 {
			s.IssuesTotal++
		}

		for _, issue := range r.Issues {
			switch issue {
			case IssueDoBMoBSwap:
				s.DoBMoBSwapped++
			case IssueDoBMismatch:
				s.DoBMismatch++
			case IssueMoBMismatch:
				s.MoBMismatch++
			case IssueSexMismatch:
				s.SexMismatch++
			case IssueNationalityMismatch:
				s.NationalityMismatch++
			case IssueBirthYearMismatch:
				s.BirthYearMismatch++
			}
		}
	}

	return s
}
