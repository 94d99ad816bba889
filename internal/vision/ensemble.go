package vision

import (
	"sort"

	"github.com/TodFrog/product-judge/internal/catalog"
)

// CrossViewBonus scales the score boost per extra camera agreeing on
// the same class.
const CrossViewBonus = 0.15

// MaxCandidates caps the fused candidate list.
const MaxCandidates = 5

// Candidate is one fused product hypothesis across all cameras.
// FusedScore may exceed 1 once the cross-view bonus applies; it is
// only ever compared, never interpreted as a probability.
type Candidate struct {
	ProductID  int
	Name       string
	FusedScore float64
	Cameras    []string
}

// Ensemble fuses per-camera top-K lists into one ranked candidate list.
// A class scores the maximum confidence any camera gave it, multiplied
// by (1 + CrossViewBonus·(n−1)) when n ≥ 2 cameras agree. The hand class
// and classes not present in the catalog are dropped. At most
// MaxCandidates survive, ordered by score descending, ties by class id.
func Ensemble(perCamera map[string][]Detection, cat *catalog.Catalog) []Candidate {
	type agg struct {
		best    float64
		cameras map[string]struct{}
	}
	byClass := make(map[int]*agg)

	for camera, dets := range perCamera {
		for _, d := range dets {
			if d.IsHand() {
				continue
			}
			a, ok := byClass[d.ClassID]
			if !ok {
				a = &agg{cameras: make(map[string]struct{})}
				byClass[d.ClassID] = a
			}
			if d.Confidence > a.best {
				a.best = d.Confidence
			}
			a.cameras[camera] = struct{}{}
		}
	}

	candidates := make([]Candidate, 0, len(byClass))
	for classID, a := range byClass {
		product, ok := cat.ByID(classID)
		if !ok {
			continue
		}

		cameras := make([]string, 0, len(a.cameras))
		for cam := range a.cameras {
			cameras = append(cameras, cam)
		}
		sort.Strings(cameras)

		score := a.best
		if n := len(cameras); n >= 2 {
			score = a.best * (1 + CrossViewBonus*float64(n-1))
		}

		candidates = append(candidates, Candidate{
			ProductID:  classID,
			Name:       product.Name,
			FusedScore: score,
			Cameras:    cameras,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FusedScore != candidates[j].FusedScore {
			return candidates[i].FusedScore > candidates[j].FusedScore
		}
		return candidates[i].ProductID < candidates[j].ProductID
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	return candidates
}
