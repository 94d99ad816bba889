package loadcell

import "testing"

func testReading(t *testing.T) Reading {
	t.Helper()
	current := []float64{500, 500, 0, 0, 120, 80, 0, 0, 0, 0}
	baseline := []float64{865, 500, 0, 0, 100, 80, 0, 0, 0, 0}
	r, err := NewReading(current, baseline)
	if err != nil {
		t.Fatalf("NewReading returned error: %v", err)
	}
	return r
}

func TestNewReadingValidatesChannels(t *testing.T) {
	ten := make([]float64, Channels)

	if _, err := NewReading(ten[:9], ten); err == nil {
		t.Error("expected error for short current array")
	}
	if _, err := NewReading(ten, ten[:3]); err == nil {
		t.Error("expected error for short baseline array")
	}
	if _, err := NewReading(ten, ten); err != nil {
		t.Errorf("expected valid reading, got %v", err)
	}
}

func TestDeltas(t *testing.T) {
	r := testReading(t)
	deltas := r.Deltas()

	if len(deltas) != Channels {
		t.Fatalf("expected %d deltas, got %d", Channels, len(deltas))
	}
	if deltas[0] != -365 || deltas[1] != 0 || deltas[4] != 20 {
		t.Errorf("unexpected deltas: %v", deltas)
	}
}

func TestTotalDelta(t *testing.T) {
	r := testReading(t)
	if got := r.TotalDelta(); got != -345 {
		t.Errorf("expected -345 total, got %v", got)
	}
}

func TestZoneDelta(t *testing.T) {
	r := testReading(t)

	z0, err := r.ZoneDelta(0)
	if err != nil || z0 != -365 {
		t.Errorf("zone 0: got %v err=%v", z0, err)
	}
	z2, err := r.ZoneDelta(2)
	if err != nil || z2 != 20 {
		t.Errorf("zone 2: got %v err=%v", z2, err)
	}
	z4, err := r.ZoneDelta(4)
	if err != nil || z4 != 0 {
		t.Errorf("zone 4: got %v err=%v", z4, err)
	}

	if _, err := r.ZoneDelta(5); err == nil {
		t.Error("expected error for zone 5")
	}
	if _, err := r.ZoneDelta(-1); err == nil {
		t.Error("expected error for negative zone")
	}
}

func TestActiveZone(t *testing.T) {
	r := testReading(t)

	zone, ok := r.ActiveZone(ActiveZoneThresholdG)
	if !ok || zone != 0 {
		t.Errorf("expected zone 0 active, got %d ok=%v", zone, ok)
	}

	quiet, _ := NewReading(make([]float64, Channels), make([]float64, Channels))
	if _, ok := quiet.ActiveZone(ActiveZoneThresholdG); ok {
		t.Error("expected no active zone on a quiet tray")
	}
}
