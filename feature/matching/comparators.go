package matching

import "github.com/kbecker21/tt-csv-matcher/feature/roster/models"

// nameKey is the normalized (last, first) pair used for index lookups.
type nameKey struct {
	last  string
	first string
}

func keyOf(p models.Player) nameKey {
	return nameKey{
		last:  NormalizeField(p.LastName),
		first: NormalizeField(p.FirstName),
	}
}

// swapped returns the key with last and first name exchanged.
func (k nameKey) swapped() nameKey {
	return nameKey{last: k.first, first: k.last}
}

// ExactName reports whether both normalized name fields match exactly.
func ExactName(event, ref models.Player) bool {
	return keyOf(event) == keyOf(ref)
}

// NameSwap reports whether the event record carries first and last name
// transposed relative to the reference record. An exact match is never
// also a name swap, so identical names under swap stay in the exact tier.
func NameSwap(event, ref models.Player) bool {
	ek, rk := keyOf(event), keyOf(ref)
	return ek == rk.swapped() && ek != rk
}

// CombinedNameSimilarity computes the fuzzy-tier score for a record pair:
// the arithmetic mean of the Jaro-Winkler similarities of the normalized
// last names and first names. The mean (rather than the minimum) is the
// documented combination rule; a perfect first name can carry a slightly
// misspelled last name over the threshold, which is the desired typo
// tolerance.
func CombinedNameSimilarity(event, ref models.Player) float64 {
	ek, rk := keyOf(event), keyOf(ref)
	return combineSimilarity(Similarity(ek.last, rk.last), Similarity(ek.first, rk.first))
}

func combineSimilarity(lastSim, firstSim float64) float64 {
	return (lastSim + firstSim) / 2.0
}

// DoBMoBSwapped reports whether day and month of birth appear transposed
// between the event and the reference record. The check requires the same
// year of birth and guards against the degenerate case where day equals
// month (a swap would be a no-op). Missing birth data on either side
// counts as not swapped.
func DoBMoBSwapped(event, ref models.Player) bool {
	if event.DoB == 0 || event.MoB == 0 || ref.DoB == 0 || ref.MoB == 0 {
		return false
	}
	return event.DoB == ref.MoB &&
		event.MoB == ref.DoB &&
		event.YoB == ref.YoB &&
		event.DoB != event.MoB
}
