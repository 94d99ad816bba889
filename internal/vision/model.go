// Package vision turns raw camera detections into ranked product
// candidates: hand-proximity filtering, per-camera top-K selection and
// cross-camera ensembling.
package vision

import "math"

// BBox is an axis-aligned box in pixel coordinates, x1/y1 top-left.
type BBox struct {
	X1, Y1, X2, Y2 float64
}

// Valid reports whether the corners are ordered.
func (b BBox) Valid() bool {
	return b.X1 <= b.X2 && b.Y1 <= b.Y2
}

func (b BBox) Width() float64  { return b.X2 - b.X1 }
func (b BBox) Height() float64 { return b.Y2 - b.Y1 }
func (b BBox) Area() float64   { return b.Width() * b.Height() }

// Center returns the box midpoint.
func (b BBox) Center() (x, y float64) {
	return (b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2
}

// CenterDistance is the Euclidean distance between box midpoints.
func (b BBox) CenterDistance(o BBox) float64 {
	bx, by := b.Center()
	ox, oy := o.Center()
	return math.Hypot(bx-ox, by-oy)
}

// IoU returns the intersection-over-union of two boxes.
func (b BBox) IoU(o BBox) float64 {
	ix1 := math.Max(b.X1, o.X1)
	iy1 := math.Max(b.Y1, o.Y1)
	ix2 := math.Min(b.X2, o.X2)
	iy2 := math.Min(b.Y2, o.Y2)

	iw := ix2 - ix1
	ih := iy2 - iy1
	if iw <= 0 || ih <= 0 {
		return 0
	}

	inter := iw * ih
	union := b.Area() + o.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// HandClassID is the detector class reserved for hands.
const HandClassID = 0

// Detection is one detector output from one camera frame.
type Detection struct {
	ClassID    int
	Name       string
	Confidence float64
	BBox       BBox
	Camera     string
}

// IsHand reports whether the detection is the reserved hand class.
func (d Detection) IsHand() bool {
	return d.ClassID == HandClassID
}

// DistanceTo is the center distance to another detection.
func (d Detection) DistanceTo(o Detection) float64 {
	return d.BBox.CenterDistance(o.BBox)
}

// SplitHands partitions detections into hands and products,
// preserving input order.
func SplitHands(dets []Detection) (hands, products []Detection) {
	for _, d := range dets {
		if d.IsHand() {
			hands = append(hands, d)
		} else {
			products = append(products, d)
		}
	}
	return hands, products
}

// PartitionByCamera groups detections by camera tag. An empty tag is
// a camera of its own.
func PartitionByCamera(dets []Detection) map[string][]Detection {
	out := make(map[string][]Detection)
	for _, d := range dets {
		out[d.Camera] = append(out[d.Camera], d)
	}
	return out
}
