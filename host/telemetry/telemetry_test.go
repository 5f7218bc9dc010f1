package telemetry

import (
	"testing"

	"svdrive/core"
)

func TestParseLine(t *testing.T) {
	line := "sv tick=42 up=5000001234 sector=1 t1=0.5000 t2=0.2500 t0=0.2500 a=4250 b=2125 c=0 angle=1.0472"
	r, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	if r.Tick != 42 || r.Sector != 1 {
		t.Errorf("tick/sector = %d/%d, want 42/1", r.Tick, r.Sector)
	}
	if r.UptimeUS != 5000001234 {
		t.Errorf("uptime = %d, want 5000001234", r.UptimeUS)
	}
	if r.T1 != 0.5 || r.T2 != 0.25 || r.T0 != 0.25 {
		t.Errorf("ratios = %v/%v/%v", r.T1, r.T2, r.T0)
	}
	if r.CompareA != 4250 || r.CompareB != 2125 || r.CompareC != 0 {
		t.Errorf("compares = %d/%d/%d", r.CompareA, r.CompareB, r.CompareC)
	}
	if r.Angle != 1.0472 {
		t.Errorf("angle = %v, want 1.0472", r.Angle)
	}
}

func TestParseLineFirmwareRoundTrip(t *testing.T) {
	// The firmware-side formatter and this parser must agree on the
	// format.
	m := core.Modulation{
		Sector:   core.Sector3,
		T1:       0.125,
		T2:       0.375,
		T0:       0.5,
		CompareA: 1062,
		CompareB: 7437,
		CompareC: 5312,
	}
	line := core.FormatStateLine(99, 123456789, 2.25, m)

	r, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q) failed: %v", line, err)
	}
	if r.Tick != 99 || r.UptimeUS != 123456789 || r.Sector != 3 || r.Angle != 2.25 {
		t.Errorf("round trip lost header fields: %+v", r)
	}
	if r.T1 != 0.125 || r.T2 != 0.375 || r.T0 != 0.5 {
		t.Errorf("round trip lost ratios: %+v", r)
	}
	if r.CompareA != 1062 || r.CompareB != 7437 || r.CompareC != 5312 {
		t.Errorf("round trip lost compares: %+v", r)
	}
}

func TestParseLineIgnoresUnknownKeys(t *testing.T) {
	r, err := ParseLine("sv tick=7 sector=2 vbus=24.1")
	if err != nil {
		t.Fatalf("unknown key should be skipped, got error: %v", err)
	}
	if r.Tick != 7 || r.Sector != 2 {
		t.Errorf("known fields lost: %+v", r)
	}
}

func TestParseLineRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"hello world",
		"sv tick",
		"sv tick=abc",
		"sv a=99999", // exceeds uint16
	}
	for _, line := range bad {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("ParseLine(%q) accepted garbage", line)
		}
	}
}
