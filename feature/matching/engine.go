package matching

import (
	"fmt"

	"github.com/kbecker21/tt-csv-matcher/feature/roster/models"
)

// refEntry caches the normalized name fields of one reference record so
// the fuzzy tier does not re-normalize on every comparison.
type refEntry struct {
	player models.Player
	key    nameKey
}

// Matcher matches event records against a fixed reference set.
//
// The reference set is treated as read-only and its input order is part
// of the contract: every tie inside a tier breaks towards the record
// encountered first.
type Matcher struct {
	cfg  Config
	refs []refEntry

	// Insertion-ordered candidate lists keyed by normalized names. The
	// exact index is keyed (last, first), the swap index (first, last).
	nameIndex map[nameKey][]int
	swapIndex map[nameKey][]int
}

// NewMatcher builds a matcher over the given reference set. The only
// checked precondition is the fuzzy threshold range; an out-of-range
// threshold is a configuration error reported before any matching.
func NewMatcher(refs []models.Player, cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matching config: %w", err)
	}

	m := &Matcher{
		cfg:       cfg,
		refs:      make([]refEntry, 0, len(refs)),
		nameIndex: make(map[nameKey][]int, len(refs)),
		swapIndex: make(map[nameKey][]int, len(refs)),
	}

	for i, p := range refs {
		key := keyOf(p)
		m.refs = append(m.refs, refEntry{player: p, key: key})
		m.nameIndex[key] = append(m.nameIndex[key], i)
		m.swapIndex[key.swapped()] = append(m.swapIndex[key.swapped()], i)
	}

	return m, nil
}

// Match evaluates one event record against the full reference set and
// returns its final verdict. Tier priority is strict: any exact candidate
// wins over all swap and fuzzy candidates, any swap candidate over all
// fuzzy ones. Malformed individual fields never abort a match; secondary
// checks simply treat missing data as not mismatched.
func (m *Matcher) Match(event models.Player) Result {
	return m.score(m.outcome(event))
}

// MatchAll matches every event record in order. The result order mirrors
// the event input order.
func (m *Matcher) MatchAll(events []models.Player) []Result {
	results := make([]Result, 0, len(events))
	for _, event := range events {
		results = append(results, m.Match(event))
	}
	return results
}

func (m *Matcher) outcome(event models.Player) Outcome {
	key := keyOf(event)

	// Tier 1: exact name match. Tie-break: first in reference order
	// (exact duplicates in the reference set are a data-quality anomaly
	// outside this system's scope).
	if candidates, ok := m.nameIndex[key]; ok && len(candidates) > 0 {
		ref := m.refs[candidates[0]].player
		return Outcome{Event: event, Ref: &ref, Tier: TierExact, Similarity: 1.0}
	}

	// Tier 2: name-swap match. The swap index is keyed by transposed
	// reference names, so a plain lookup with the event key finds all
	// references whose names are swapped relative to the event.
	if candidates, ok := m.swapIndex[key]; ok && len(candidates) > 0 {
		ref := m.refs[candidates[0]].player
		return Outcome{Event: event, Ref: &ref, Tier: TierNameSwap, Similarity: 1.0}
	}

	// Tier 3: fuzzy match over the whole reference set. Highest combined
	// score wins; a strict comparison keeps the first-encountered record
	// on ties.
	bestIdx := -1
	bestScore := 0.0
	for i, ref := range m.refs {
		score := combineSimilarity(
			Similarity(key.last, ref.key.last),
			Similarity(key.first, ref.key.first),
		)
		if score >= m.cfg.FuzzyThreshold && score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx >= 0 {
		ref := m.refs[bestIdx].player
		return Outcome{Event: event, Ref: &ref, Tier: TierFuzzy, Similarity: bestScore}
	}

	return Outcome{Event: event, Tier: TierNone}
}
