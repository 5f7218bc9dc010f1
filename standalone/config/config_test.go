package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.CarrierPeriodTicks != 8499 {
		t.Errorf("CarrierPeriodTicks = %d, want 8499", cfg.CarrierPeriodTicks)
	}
	if cfg.ControlFrequencyHz != 10000 {
		t.Errorf("ControlFrequencyHz = %v, want 10000", cfg.ControlFrequencyHz)
	}
	if cfg.TelemetryDivider != 1000 {
		t.Errorf("TelemetryDivider = %d, want 1000", cfg.TelemetryDivider)
	}
	if cfg.StartFrequencyHz != 0 || cfg.StartVoltage != 0 {
		t.Error("initial setpoint should default to idle")
	}
	if cfg.PhaseA.High != 0 || cfg.PhaseA.Low != 1 || cfg.PhaseC.High != 4 {
		t.Errorf("default phase pins wrong: %+v %+v %+v", cfg.PhaseA, cfg.PhaseB, cfg.PhaseC)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	data := `{
		"CarrierPeriodTicks": 4999,
		"ControlFrequencyHz": 8000,
		"StartFrequencyHz": 25,
		"StartVoltage": 0.4,
		"PhaseA": {"High": 6, "Low": 7},
		"PhaseB": {"High": 8, "Low": 9},
		"PhaseC": {"High": 10, "Low": 11}
	}`
	cfg, err := LoadConfig([]byte(data))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.CarrierPeriodTicks != 4999 || cfg.ControlFrequencyHz != 8000 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.StartFrequencyHz != 25 || cfg.StartVoltage != 0.4 {
		t.Errorf("setpoint not applied: %+v", cfg)
	}
	if cfg.PhaseB.High != 8 || cfg.PhaseB.Low != 9 {
		t.Errorf("phase pins not applied: %+v", cfg.PhaseB)
	}
	// Untouched fields still get defaults.
	if cfg.TelemetryDivider != 1000 {
		t.Errorf("TelemetryDivider = %d, want default 1000", cfg.TelemetryDivider)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	if _, err := LoadConfig([]byte(`{"ControlFrequencyHz": -50}`)); err == nil {
		t.Error("negative control frequency accepted")
	}
	if _, err := LoadConfig([]byte(`{"StartVoltage": 1.5}`)); err == nil {
		t.Error("out-of-range start voltage accepted")
	}
	if _, err := LoadConfig([]byte(`not json`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestDefaultDriveConfig(t *testing.T) {
	cfg := DefaultDriveConfig()
	if cfg.CarrierPeriodTicks != 8499 || cfg.ControlFrequencyHz != 10000 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	pins := []uint8{
		cfg.PhaseA.High, cfg.PhaseA.Low,
		cfg.PhaseB.High, cfg.PhaseB.Low,
		cfg.PhaseC.High, cfg.PhaseC.Low,
	}
	seen := map[uint8]bool{}
	for _, p := range pins {
		if seen[p] {
			t.Fatalf("pin %d assigned twice in defaults", p)
		}
		seen[p] = true
	}
}

func TestValidateMessage(t *testing.T) {
	_, err := LoadConfig([]byte(`{"StartVoltage": 2}`))
	if err == nil || !strings.Contains(err.Error(), "start voltage") {
		t.Errorf("unhelpful validation error: %v", err)
	}
}
