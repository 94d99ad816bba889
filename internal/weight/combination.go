package weight

import (
	"math"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/vision"
)

const (
	// MaxSubsetSize bounds how many distinct products one judgment
	// may mix.
	MaxSubsetSize = 2
	// MaxUnitCount bounds the per-product count inside a combination.
	MaxUnitCount = 5

	// maxConsidered matches the ensemble width; extra candidates are
	// ignored rather than exploding the search.
	maxConsidered = 5

	// withinBonus puts every within-tolerance tuple ahead of every
	// tuple that is not.
	withinBonus = 10.0
)

// Item is one product line inside a combination.
type Item struct {
	Candidate vision.Candidate
	Product   catalog.Product
	Count     int
}

// ExpectedG is the weight this line accounts for.
func (it Item) ExpectedG() float64 {
	return it.Product.UnitWeightG * float64(it.Count)
}

// Combination is a scored (product, count) tuple explaining a weight
// change. ToleranceG is additive per item: each line contributes
// count·unit·tolerance, so a pair of light items never inherits a heavy
// item's band.
type Combination struct {
	Items      []Item
	ExpectedG  float64
	ErrorG     float64
	ToleranceG float64
	RankScore  float64
	Score      float64
	Within     bool
}

// MatchCombination searches subsets of up to MaxSubsetSize candidates
// with per-product counts 1..MaxUnitCount for the tuple that best
// explains absWeightG. Candidates that do not resolve in the catalog or
// have no known unit weight are skipped; tuples whose expected weight
// overshoots absWeightG·(1+MaxTolerance) are discarded. Ties prefer
// fewer distinct products, then smaller error, then enumeration order.
// ok is false when no tuple survives.
func MatchCombination(cands []vision.Candidate, cat *catalog.Catalog, absWeightG float64) (Combination, bool) {
	type entry struct {
		cand    vision.Candidate
		product catalog.Product
	}

	eligible := make([]entry, 0, maxConsidered)
	for _, cand := range cands {
		p, ok := cat.ByID(cand.ProductID)
		if !ok || !p.HasKnownWeight() {
			continue
		}
		eligible = append(eligible, entry{cand: cand, product: p})
		if len(eligible) == maxConsidered {
			break
		}
	}
	if len(eligible) == 0 {
		return Combination{}, false
	}

	maxExpected := absWeightG * (1 + catalog.MaxTolerance)
	var best Combination
	found := false

	consider := func(items []Item) {
		combo, ok := build(items, absWeightG, maxExpected)
		if !ok {
			return
		}
		if !found || better(combo, best) {
			best = combo
			found = true
		}
	}

	for i, e := range eligible {
		for c := 1; c <= MaxUnitCount; c++ {
			consider([]Item{{Candidate: e.cand, Product: e.product, Count: c}})
		}
		for j := i + 1; j < len(eligible); j++ {
			other := eligible[j]
			for c1 := 1; c1 <= MaxUnitCount; c1++ {
				for c2 := 1; c2 <= MaxUnitCount; c2++ {
					consider([]Item{
						{Candidate: e.cand, Product: e.product, Count: c1},
						{Candidate: other.cand, Product: other.product, Count: c2},
					})
				}
			}
		}
	}

	return best, found
}

func build(items []Item, absWeightG, maxExpected float64) (Combination, bool) {
	var expected, toleranceG, rank float64
	for _, it := range items {
		lineWeight := it.ExpectedG()
		expected += lineWeight
		toleranceG += lineWeight * it.Product.Tolerance()
		rank += it.Candidate.FusedScore
	}
	if expected <= 0 || expected > maxExpected {
		return Combination{}, false
	}

	errG := math.Abs(absWeightG - expected)
	within := errG <= toleranceG

	score := rank - errG/math.Max(absWeightG, 1)
	if within {
		score += withinBonus
	}

	return Combination{
		Items:      items,
		ExpectedG:  expected,
		ErrorG:     errG,
		ToleranceG: toleranceG,
		RankScore:  rank,
		Score:      score,
		Within:     within,
	}, true
}

func better(a, b Combination) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Items) != len(b.Items) {
		return len(a.Items) < len(b.Items)
	}
	return a.ErrorG < b.ErrorG
}
