package vision

// HandMaxDistancePX bounds how far (center to center, pixels) a product
// may sit from the nearest hand and still count as "being handled".
const HandMaxDistancePX = 150.0

// FilterByHandProximity keeps the product detections a customer is
// plausibly interacting with: every non-hand detection whose center lies
// within maxDistancePX of the nearest hand center. Frames without any
// hand pass all product detections through unchanged, so the filter is
// idempotent. Hands themselves are never returned.
func FilterByHandProximity(dets []Detection, maxDistancePX float64) []Detection {
	hands, products := SplitHands(dets)
	if len(hands) == 0 {
		return products
	}

	kept := make([]Detection, 0, len(products))
	for _, p := range products {
		if nearestHandDistance(p, hands) <= maxDistancePX {
			kept = append(kept, p)
		}
	}
	return kept
}

func nearestHandDistance(p Detection, hands []Detection) float64 {
	nearest := p.DistanceTo(hands[0])
	for _, h := range hands[1:] {
		if d := p.DistanceTo(h); d < nearest {
			nearest = d
		}
	}
	return nearest
}
