package matching

import (
	"testing"

	"github.com/kbecker21/tt-csv-matcher/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRefs() []models.Player {
	return []models.Player{
		{ExternID: "1", LastName: "Müller", FirstName: "Jan", Sex: "M", Association: "GER", DoB: 12, MoB: 5, YoB: 1990},
		{ExternID: "2", LastName: "Meier", FirstName: "Anna", Sex: "W", Association: "GER", DoB: 3, MoB: 7, YoB: 1995},
		{ExternID: "3", LastName: "Tanaka", FirstName: "Yuki", Sex: "W", Association: "JPN", DoB: 21, MoB: 11, YoB: 1988},
	}
}

func newTestMatcher(t *testing.T, refs []models.Player) *Matcher {
	t.Helper()
	m, err := NewMatcher(refs, DefaultConfig())
	require.NoError(t, err)
	return m
}

func TestNewMatcherValidatesThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.5} {
		cfg := DefaultConfig()
		cfg.FuzzyThreshold = threshold
		_, err := NewMatcher(testRefs(), cfg)
		assert.Error(t, err, "threshold %v must be rejected", threshold)
	}
}

func TestMatchExact(t *testing.T) {
	m := newTestMatcher(t, testRefs())

	result := m.Match(models.Player{LastName: "müller", FirstName: "JAN", Sex: "M", Association: "GER", DoB: 12, MoB: 5, YoB: 1990})

	assert.Equal(t, TierExact, result.Tier)
	require.NotNil(t, result.Ref)
	assert.Equal(t, "1", result.Ref.ExternID)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Empty(t, result.Issues)
}

func TestMatchNameSwap(t *testing.T) {
	m := newTestMatcher(t, testRefs())

	result := m.Match(models.Player{LastName: "Anna", FirstName: "Meier", Sex: "W", Association: "GER", DoB: 3, MoB: 7, YoB: 1995})

	assert.Equal(t, TierNameSwap, result.Tier)
	require.NotNil(t, result.Ref)
	assert.Equal(t, "2", result.Ref.ExternID)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Empty(t, result.Issues)
}

func TestMatchSwapBeatsFuzzy(t *testing.T) {
	// A swapped record is also textually similar to its reference, but
	// the swap tier has strict priority over fuzzy.
	refs := []models.Player{
		{ExternID: "1", LastName: "Meier", FirstName: "Maier"},
		{ExternID: "2", LastName: "Maier", FirstName: "Meier"},
	}
	m := newTestMatcher(t, refs)

	result := m.Match(models.Player{LastName: "Maier", FirstName: "Meier"})

	assert.Equal(t, TierExact, result.Tier, "exact beats everything")
	require.NotNil(t, result.Ref)
	assert.Equal(t, "2", result.Ref.ExternID)

	refsSwapOnly := []models.Player{
		{ExternID: "1", LastName: "Meier", FirstName: "Maier"},
	}
	m = newTestMatcher(t, refsSwapOnly)

	result = m.Match(models.Player{LastName: "Maier", FirstName: "Meier"})
	assert.Equal(t, TierNameSwap, result.Tier, "swap beats fuzzy even when the names are similar")
}

func TestMatchFuzzy(t *testing.T) {
	m := newTestMatcher(t, testRefs())

	result := m.Match(models.Player{LastName: "Muller", FirstName: "Jan", Sex: "M", Association: "GER", DoB: 12, MoB: 5, YoB: 1990})

	assert.Equal(t, TierFuzzy, result.Tier)
	require.NotNil(t, result.Ref)
	assert.Equal(t, "1", result.Ref.ExternID)
	assert.GreaterOrEqual(t, result.Similarity, 0.85)
	assert.Less(t, result.Similarity, 1.0)
	assert.Empty(t, result.Issues)
	assert.InDelta(t, result.Similarity, result.Confidence, 0.0001, "fuzzy confidence passes the raw similarity through")
}

func TestMatchNone(t *testing.T) {
	m := newTestMatcher(t, testRefs())

	result := m.Match(models.Player{LastName: "Nakamura", FirstName: "Hiro"})

	assert.Equal(t, TierNone, result.Tier)
	assert.Nil(t, result.Ref)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, []Issue{IssueNoMatch}, result.Issues)
}

func TestMatchExactTieBreaksOnReferenceOrder(t *testing.T) {
	refs := []models.Player{
		{ExternID: "first", LastName: "Müller", FirstName: "Jan"},
		{ExternID: "second", LastName: "Müller", FirstName: "Jan"},
	}
	m := newTestMatcher(t, refs)

	result := m.Match(models.Player{LastName: "Müller", FirstName: "Jan"})

	require.NotNil(t, result.Ref)
	assert.Equal(t, "first", result.Ref.ExternID)
}

func TestMatchFuzzyTieBreaksOnReferenceOrder(t *testing.T) {
	// Both references are equally similar to the event record.
	refs := []models.Player{
		{ExternID: "first", LastName: "Mueller", FirstName: "Jan"},
		{ExternID: "second", LastName: "Mueller", FirstName: "Jan"},
	}
	m := newTestMatcher(t, refs)

	result := m.Match(models.Player{LastName: "Muellar", FirstName: "Jan"})

	assert.Equal(t, TierFuzzy, result.Tier)
	require.NotNil(t, result.Ref)
	assert.Equal(t, "first", result.Ref.ExternID)
}

func TestMatchFuzzyPicksHighestScore(t *testing.T) {
	refs := []models.Player{
		{ExternID: "far", LastName: "Muehler", FirstName: "Jan"},
		{ExternID: "near", LastName: "Mueller", FirstName: "Jan"},
	}
	m := newTestMatcher(t, refs)

	result := m.Match(models.Player{LastName: "Muellers", FirstName: "Jan"})

	assert.Equal(t, TierFuzzy, result.Tier)
	require.NotNil(t, result.Ref)
	assert.Equal(t, "near", result.Ref.ExternID)
}

func TestFuzzyThresholdMonotonicity(t *testing.T) {
	event := models.Player{LastName: "Muller", FirstName: "Jan"}

	lowCfg := DefaultConfig()
	m, err := NewMatcher(testRefs(), lowCfg)
	require.NoError(t, err)
	low := m.Match(event)
	require.Equal(t, TierFuzzy, low.Tier)

	// Raising the threshold may only move fuzzy records to none, never
	// the reverse.
	highCfg := DefaultConfig()
	highCfg.FuzzyThreshold = 0.999
	m, err = NewMatcher(testRefs(), highCfg)
	require.NoError(t, err)
	high := m.Match(event)
	assert.Equal(t, TierNone, high.Tier)
}

func TestMatchAllPreservesOrderAndIsDeterministic(t *testing.T) {
	m := newTestMatcher(t, testRefs())

	events := []models.Player{
		{LastName: "Tanaka", FirstName: "Yuki"},
		{LastName: "Nobody", FirstName: "Known"},
		{LastName: "Anna", FirstName: "Meier"},
		{LastName: "Muller", FirstName: "Jan"},
	}

	first := m.MatchAll(events)
	second := m.MatchAll(events)

	require.Len(t, first, len(events))
	assert.Equal(t, TierExact, first[0].Tier)
	assert.Equal(t, TierNone, first[1].Tier)
	assert.Equal(t, TierNameSwap, first[2].Tier)
	assert.Equal(t, TierFuzzy, first[3].Tier)

	assert.Equal(t, first, second, "matching must be a pure function of its inputs")
}

func TestMatchMissingBirthDataDoesNotAbort(t *testing.T) {
	refs := []models.Player{
		{ExternID: "1", LastName: "Müller", FirstName: "Jan", Sex: "M", Association: "GER", DoB: 12, MoB: 5, YoB: 1990},
	}
	m := newTestMatcher(t, refs)

	result := m.Match(models.Player{LastName: "Müller", FirstName: "Jan"})

	assert.Equal(t, TierExact, result.Tier)
	assert.Empty(t, result.Issues, "absent fields are not evidence of mismatch")
	assert.Equal(t, 1.0, result.Confidence)
}
