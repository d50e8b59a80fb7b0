package matching

import "github.com/xrash/smetrics"

const (
	// jaroWinklerBoostThreshold is the minimum base Jaro similarity
	// required before the common-prefix bonus is applied.
	jaroWinklerBoostThreshold = 0.7
	// jaroWinklerPrefixSize is the maximum prefix length rewarded by the bonus.
	jaroWinklerPrefixSize = 4
)

// Similarity computes the Jaro-Winkler similarity of two normalized
// strings, in [0.0, 1.0]. The prefix bonus only kicks in when the base
// Jaro similarity exceeds the boost threshold.
//
// The function is symmetric. Two empty strings score 1.0 (there is no
// information to disagree on); one empty against one non-empty scores 0.0.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return smetrics.JaroWinkler(a, b, jaroWinklerBoostThreshold, jaroWinklerPrefixSize)
}
