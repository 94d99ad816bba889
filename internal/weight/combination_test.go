package weight

import (
	"testing"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/vision"
)

func cand(productID int, fused float64) vision.Candidate {
	return vision.Candidate{ProductID: productID, FusedScore: fused, Cameras: []string{"top"}}
}

func TestMatchSingleProduct(t *testing.T) {
	cat := catalog.Builtin()
	cands := []vision.Candidate{cand(4, 0.85)} // coca_cola_350, 380g

	combo, ok := MatchCombination(cands, cat, 380)
	if !ok {
		t.Fatal("expected a match")
	}
	if len(combo.Items) != 1 || combo.Items[0].Count != 1 {
		t.Fatalf("expected one unit of one product, got %+v", combo.Items)
	}
	if !combo.Within || combo.ErrorG != 0 {
		t.Errorf("expected clean within-tolerance match: %+v", combo)
	}
	if combo.ExpectedG != 380 {
		t.Errorf("expected 380g explained, got %v", combo.ExpectedG)
	}
}

func TestMatchMultipleUnits(t *testing.T) {
	cat := catalog.Builtin()
	cands := []vision.Candidate{cand(9, 0.9)} // vita500, 130g

	combo, ok := MatchCombination(cands, cat, 260)
	if !ok || !combo.Within {
		t.Fatalf("expected within match, got ok=%v combo=%+v", ok, combo)
	}
	if combo.Items[0].Count != 2 {
		t.Errorf("expected count 2, got %d", combo.Items[0].Count)
	}
}

func TestMatchPair(t *testing.T) {
	cat := catalog.Builtin()
	cands := []vision.Candidate{
		cand(21, 0.8),  // snickers, 52g
		cand(9, 0.75),  // vita500, 130g
	}

	combo, ok := MatchCombination(cands, cat, 182)
	if !ok || !combo.Within {
		t.Fatalf("expected within pair match, got ok=%v combo=%+v", ok, combo)
	}
	if len(combo.Items) != 2 {
		t.Fatalf("expected two products, got %d", len(combo.Items))
	}
	counts := map[int]int{}
	for _, it := range combo.Items {
		counts[it.Product.ID] = it.Count
	}
	if counts[21] != 1 || counts[9] != 1 {
		t.Errorf("expected one of each, got %v", counts)
	}
	// additive per-item band: 52*0.10 + 130*0.05
	wantTol := 52*0.10 + 130*0.05
	if diff := combo.ToleranceG - wantTol; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected tolerance %v, got %v", wantTol, combo.ToleranceG)
	}
}

func TestMatchHigherFusedWinsAmongEquals(t *testing.T) {
	cat := catalog.Builtin()
	// coca and sprite both weigh 380g; only confidence separates them
	cands := []vision.Candidate{cand(5, 0.3), cand(4, 0.85)}

	combo, ok := MatchCombination(cands, cat, 380)
	if !ok {
		t.Fatal("expected a match")
	}
	if combo.Items[0].Product.ID != 4 {
		t.Errorf("expected the stronger candidate, got product %d", combo.Items[0].Product.ID)
	}
}

func TestMatchPrefersSingletonOnTie(t *testing.T) {
	cat := catalog.Builtin()
	// twix (50g) at 0.5 plus a zero-score 50g product: the pair and
	// twix×2 both explain 100g exactly with equal score
	cands := []vision.Candidate{cand(22, 0.5), cand(50, 0.0)}

	combo, ok := MatchCombination(cands, cat, 100)
	if !ok {
		t.Fatal("expected a match")
	}
	if len(combo.Items) != 1 {
		t.Fatalf("expected singleton to win the tie, got %d items", len(combo.Items))
	}
	if combo.Items[0].Product.ID != 22 || combo.Items[0].Count != 2 {
		t.Errorf("expected twix x2, got %+v", combo.Items[0])
	}
}

func TestMatchBestErrorWhenNotWithin(t *testing.T) {
	cat := catalog.Builtin()
	cands := []vision.Candidate{cand(26, 0.9)} // chickenmayo_rice, 365g

	combo, ok := MatchCombination(cands, cat, 500)
	if !ok {
		t.Fatal("expected a match")
	}
	if combo.Within {
		t.Error("365g against 500g must not be within tolerance")
	}
	if combo.Items[0].Count != 1 || combo.ErrorG != 135 {
		t.Errorf("expected single unit with 135g error, got %+v", combo)
	}
}

func TestMatchNoWeighableCandidates(t *testing.T) {
	cat := catalog.Builtin()

	if _, ok := MatchCombination(nil, cat, 300); ok {
		t.Error("expected no match for empty candidates")
	}

	// hand has no weight, 999 is not in the catalog
	cands := []vision.Candidate{cand(0, 0.9), cand(999, 0.8)}
	if _, ok := MatchCombination(cands, cat, 300); ok {
		t.Error("expected no match without weighable candidates")
	}
}

func TestMatchOvershootDiscarded(t *testing.T) {
	cat := catalog.Builtin()
	cands := []vision.Candidate{cand(3, 0.9)} // evian_500, 530g

	// a single unit already overshoots 100g beyond any tolerance
	if _, ok := MatchCombination(cands, cat, 100); ok {
		t.Error("expected every tuple to be discarded as overshoot")
	}
}

func TestMatchExplainedNeverExceedsTolerantDelta(t *testing.T) {
	cat := catalog.Builtin()
	cands := []vision.Candidate{cand(21, 0.7), cand(9, 0.6), cand(26, 0.5)}

	for _, w := range []float64{50, 130, 182, 365, 430, 500, 900} {
		combo, ok := MatchCombination(cands, cat, w)
		if !ok {
			continue
		}
		if combo.ExpectedG > w*(1+catalog.MaxTolerance) {
			t.Errorf("w=%v: explained %v exceeds bound", w, combo.ExpectedG)
		}
	}
}
