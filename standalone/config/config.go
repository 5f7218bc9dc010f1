package config

import (
	"encoding/json"
	"fmt"

	"svdrive/standalone"
)

// LoadConfig parses a JSON configuration and returns a DriveConfig with
// defaults applied.
func LoadConfig(jsonData []byte) (*standalone.DriveConfig, error) {
	var config standalone.DriveConfig

	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills in missing configuration values with sensible defaults.
func applyDefaults(config *standalone.DriveConfig) {
	if config.CarrierPeriodTicks == 0 {
		config.CarrierPeriodTicks = 8499
	}
	if config.ControlFrequencyHz == 0 {
		config.ControlFrequencyHz = 10000.0
	}
	if config.TelemetryDivider == 0 {
		config.TelemetryDivider = 1000
	}

	zero := standalone.PhasePins{}
	if config.PhaseA == zero && config.PhaseB == zero && config.PhaseC == zero {
		// Three adjacent RP2040 PWM slices, B channels as complementary legs.
		config.PhaseA = standalone.PhasePins{High: 0, Low: 1}
		config.PhaseB = standalone.PhasePins{High: 2, Low: 3}
		config.PhaseC = standalone.PhasePins{High: 4, Low: 5}
	}
}

// validate rejects configurations the drive cannot run with.
func validate(config *standalone.DriveConfig) error {
	if config.ControlFrequencyHz < 0 {
		return fmt.Errorf("control frequency must be positive, got %v", config.ControlFrequencyHz)
	}
	if config.StartVoltage < 0 || config.StartVoltage > 1 {
		return fmt.Errorf("start voltage %v outside [0, 1]", config.StartVoltage)
	}
	return nil
}

// DefaultDriveConfig returns the baked-in configuration used when no JSON
// config is provided (the usual case for firmware builds).
func DefaultDriveConfig() *standalone.DriveConfig {
	config := &standalone.DriveConfig{}
	applyDefaults(config)
	return config
}
