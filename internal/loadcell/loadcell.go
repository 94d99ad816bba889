// Package loadcell holds the channel and zone arithmetic for the tray
// scales. The tray exposes ten channels, two per zone; judgments work
// on deltas between a baseline snapshot and the current readout.
package loadcell

import (
	"fmt"
	"math"
)

const (
	// Channels is the number of load-cell channels on one tray.
	Channels = 10
	// Zones is the number of product zones.
	Zones = 5
	// ChannelsPerZone pairs two adjacent channels under each zone.
	ChannelsPerZone = 2

	// ActiveZoneThresholdG is the minimum absolute zone delta that
	// counts as activity.
	ActiveZoneThresholdG = 5.0
)

// Reading is one baseline/current pair across all channels.
type Reading struct {
	Current  []float64
	Baseline []float64
}

// NewReading validates channel counts and returns a reading.
func NewReading(current, baseline []float64) (Reading, error) {
	if len(current) != Channels {
		return Reading{}, fmt.Errorf("expected %d current channels, got %d", Channels, len(current))
	}
	if len(baseline) != Channels {
		return Reading{}, fmt.Errorf("expected %d baseline channels, got %d", Channels, len(baseline))
	}
	return Reading{Current: current, Baseline: baseline}, nil
}

// Deltas returns current minus baseline per channel.
func (r Reading) Deltas() []float64 {
	out := make([]float64, Channels)
	for i := range out {
		out[i] = r.Current[i] - r.Baseline[i]
	}
	return out
}

// TotalDelta sums the change across every channel.
func (r Reading) TotalDelta() float64 {
	var total float64
	for i := 0; i < Channels; i++ {
		total += r.Current[i] - r.Baseline[i]
	}
	return total
}

// ZoneDelta sums the change across one zone's channel pair.
func (r Reading) ZoneDelta(zone int) (float64, error) {
	if zone < 0 || zone >= Zones {
		return 0, fmt.Errorf("zone %d out of range 0..%d", zone, Zones-1)
	}
	start := zone * ChannelsPerZone
	var total float64
	for i := start; i < start+ChannelsPerZone; i++ {
		total += r.Current[i] - r.Baseline[i]
	}
	return total, nil
}

// ActiveZone returns the first zone whose absolute delta exceeds
// thresholdG, or false when every zone is quiet.
func (r Reading) ActiveZone(thresholdG float64) (int, bool) {
	for z := 0; z < Zones; z++ {
		delta, _ := r.ZoneDelta(z)
		if math.Abs(delta) > thresholdG {
			return z, true
		}
	}
	return 0, false
}
