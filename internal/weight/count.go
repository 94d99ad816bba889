// Package weight matches observed weight changes against catalog
// products: per-product count estimation and a small combination search.
package weight

import "math"

// CountEstimate is the closest integer unit count for an observed
// weight change, with its residual error.
type CountEstimate struct {
	Count     int
	ExpectedG float64
	ErrorG    float64
	Within    bool
}

// EstimateCount returns the most plausible unit count for a product
// weighing unitWeightG grams given an observed absolute weight change.
// Within holds when at least one unit is implied and the residual error
// stays inside expected*tolerance. A product without a known unit
// weight never matches: count 0, error equal to the full change.
func EstimateCount(unitWeightG, absWeightG, tolerance float64) CountEstimate {
	if unitWeightG <= 0 {
		return CountEstimate{ErrorG: absWeightG}
	}
	count := int(math.Round(absWeightG / unitWeightG))
	return estimateForCount(unitWeightG, count, absWeightG, tolerance)
}

// estimateForCount scores a forced count instead of the rounded one.
func estimateForCount(unitWeightG float64, count int, absWeightG, tolerance float64) CountEstimate {
	expected := unitWeightG * float64(count)
	errG := math.Abs(absWeightG - expected)
	return CountEstimate{
		Count:     count,
		ExpectedG: expected,
		ErrorG:    errG,
		Within:    count >= 1 && errG <= expected*tolerance,
	}
}
