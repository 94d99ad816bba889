package vision

import "sort"

// DefaultTopK is how many detections survive per camera.
const DefaultTopK = 5

// TopK returns the k strongest detections. Ordering is confidence
// descending, ties broken by larger box area, then by class id, so the
// result is deterministic for any input permutation. The input slice is
// left untouched.
func TopK(dets []Detection, k int) []Detection {
	if k <= 0 || len(dets) == 0 {
		return nil
	}

	sorted := make([]Detection, len(dets))
	copy(sorted, dets)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.BBox.Area() != b.BBox.Area() {
			return a.BBox.Area() > b.BBox.Area()
		}
		return a.ClassID < b.ClassID
	})

	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
