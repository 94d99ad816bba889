package judge

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/vision"
	"github.com/TodFrog/product-judge/internal/weight"
)

const (
	// MinDeltaWeightG is the scale noise floor; smaller changes count
	// as nothing happening.
	MinDeltaWeightG = 5.0
	// CompleteMinScore is the vision score a within-tolerance match
	// needs before the judgment is trusted end to end.
	CompleteMinScore = 0.40

	partialErrorFactor  = 2.0
	partialMinExplained = 0.5

	visionBlend = 0.5
	weightBlend = 0.5
)

// Engine runs the judgment pipeline. It carries no per-request state:
// one engine serves all concurrent requests, sharing only the immutable
// catalog.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Judge runs raw detections plus a measured weight change through the
// full pipeline: per-camera hand filtering and top-K, cross-camera
// ensembling, then weight-driven combination matching.
func (e *Engine) Judge(dets []vision.Detection, deltaWeightG float64, useHandFilter bool) Result {
	started := now()

	perCamera := make(map[string][]vision.Detection)
	for camera, camDets := range vision.PartitionByCamera(dets) {
		var products []vision.Detection
		if useHandFilter {
			products = vision.FilterByHandProximity(camDets, vision.HandMaxDistancePX)
		} else {
			_, products = vision.SplitHands(camDets)
		}
		perCamera[camera] = vision.TopK(products, vision.DefaultTopK)
	}

	candidates := vision.Ensemble(perCamera, e.catalog)
	return e.decide(candidates, deltaWeightG, started)
}

// JudgeCandidates skips the vision stage and judges fused candidates
// directly.
func (e *Engine) JudgeCandidates(cands []vision.Candidate, deltaWeightG float64) Result {
	return e.decide(cands, deltaWeightG, now())
}

// Simulate fabricates the candidate and weight change a clean pick of
// count units would produce, then judges it like any other request.
func (e *Engine) Simulate(productID, count int, confidence float64) (Result, error) {
	p, ok := e.catalog.ByID(productID)
	if !ok {
		return Result{}, catalog.ErrNotFound
	}

	delta := -(p.UnitWeightG * float64(count))
	cands := []vision.Candidate{{
		ProductID:  productID,
		Name:       p.Name,
		FusedScore: confidence,
		Cameras:    []string{"side", "top"},
	}}
	return e.decide(cands, delta, now()), nil
}

func (e *Engine) decide(cands []vision.Candidate, deltaWeightG, startedAt float64) Result {
	absW := math.Abs(deltaWeightG)

	if absW < MinDeltaWeightG || len(cands) == 0 {
		log.Printf("[ENGINE] no detection: delta=%.1fg, candidates=%d", deltaWeightG, len(cands))
		return noDetection(deltaWeightG, startedAt)
	}

	combo, ok := weight.MatchCombination(cands, e.catalog, absW)
	if !ok {
		log.Printf("[ENGINE] no weighable combination: delta=%.1fg, candidates=%d", deltaWeightG, len(cands))
		return noDetection(deltaWeightG, startedAt)
	}

	status := classify(combo, topScore(cands), absW)
	products := buildLines(combo)

	totalPrice := 0
	for _, p := range products {
		totalPrice += p.LinePrice
	}

	result := Result{
		Status:     status,
		Products:   products,
		TotalPrice: totalPrice,
		Confidence: overallConfidence(combo, absW),
		Weight: WeightInfo{
			Delta:     deltaWeightG,
			Explained: combo.ExpectedG,
			Residual:  combo.ErrorG,
		},
		Timestamp: startedAt,
	}

	log.Printf("[ENGINE] %s: %d item(s), total=%d won, confidence=%.2f, explained=%.1f/%.1fg",
		status, result.ProductCount(), totalPrice, result.Confidence, combo.ExpectedG, absW)
	return result
}

// classify applies the status ladder. A within-tolerance match still
// needs CompleteMinScore vision backing; a mismatch may pass as partial
// either by staying near the tolerance band or by explaining at least
// half the measured change.
func classify(combo weight.Combination, top, absW float64) Status {
	if combo.Within {
		if top >= CompleteMinScore {
			return StatusComplete
		}
		return StatusUncertain
	}
	if combo.ErrorG <= partialErrorFactor*combo.ToleranceG ||
		combo.ExpectedG >= partialMinExplained*absW {
		return StatusPartial
	}
	return StatusUncertain
}

func buildLines(combo weight.Combination) []ProductLine {
	items := make([]weight.Item, len(combo.Items))
	copy(items, combo.Items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Candidate.FusedScore != items[j].Candidate.FusedScore {
			return items[i].Candidate.FusedScore > items[j].Candidate.FusedScore
		}
		return items[i].Product.ID < items[j].Product.ID
	})

	lines := make([]ProductLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, ProductLine{
			ProductID:  it.Product.ID,
			Name:       it.Product.Name,
			Count:      it.Count,
			UnitPrice:  it.Product.UnitPrice,
			LinePrice:  it.Count * it.Product.UnitPrice,
			Confidence: clip01(it.Candidate.FusedScore),
		})
	}
	return lines
}

func overallConfidence(combo weight.Combination, absW float64) float64 {
	avgFused := combo.RankScore / float64(len(combo.Items))
	weightFit := math.Max(0, 1-combo.ErrorG/math.Max(absW, 1))
	return clip01(visionBlend*avgFused + weightBlend*weightFit)
}

func noDetection(delta, ts float64) Result {
	return Result{
		Status:    StatusNoDetection,
		Products:  []ProductLine{},
		Weight:    WeightInfo{Delta: delta, Explained: 0, Residual: math.Abs(delta)},
		Timestamp: ts,
	}
}

func topScore(cands []vision.Candidate) float64 {
	best := 0.0
	for _, c := range cands {
		if c.FusedScore > best {
			best = c.FusedScore
		}
	}
	return best
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
