// Package judge decides what a customer took from (or returned to) the
// tray by fusing camera detections with the measured weight change.
package judge

// Status classifies one judgment outcome.
type Status string

const (
	// StatusComplete means vision and weight agree; checkout may proceed.
	StatusComplete Status = "complete"
	// StatusPartial means the weight is off but the judgment still
	// explains most of it.
	StatusPartial Status = "partial"
	// StatusUncertain means a tuple exists but neither vision nor
	// weight backs it enough.
	StatusUncertain Status = "uncertain"
	// StatusNoDetection means nothing judgeable happened.
	StatusNoDetection Status = "no_detection"
)

// ProductLine is one judged product with its count and pricing.
type ProductLine struct {
	ProductID  int
	Name       string
	Count      int
	UnitPrice  int
	LinePrice  int
	Confidence float64
}

// WeightInfo summarizes how much of the measured change the judgment
// accounts for. Explained is exactly the sum of count·unit over the
// chosen products; Residual is |  |delta| − explained |, so it always
// equals the chosen tuple's weight error.
type WeightInfo struct {
	Delta     float64
	Explained float64
	Residual  float64
}

// Result is one full judgment.
type Result struct {
	Status     Status
	Products   []ProductLine
	TotalPrice int
	Confidence float64
	Weight     WeightInfo
	Timestamp  float64
}

// IsSuccess reports whether checkout can proceed on this judgment.
func (r Result) IsSuccess() bool {
	return r.Status == StatusComplete || r.Status == StatusPartial
}

// IsRemoval reports whether product left the tray.
func (r Result) IsRemoval() bool {
	return r.Weight.Delta < 0
}

// ProductCount sums the judged unit counts.
func (r Result) ProductCount() int {
	total := 0
	for _, p := range r.Products {
		total += p.Count
	}
	return total
}
