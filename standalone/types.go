package standalone

// PhasePins names the GPIO pins driving one half bridge (high-side and
// low-side gate signals).
type PhasePins struct {
	High uint8
	Low  uint8
}

// DriveConfig is the top-level configuration for one inverter drive.
type DriveConfig struct {
	// CarrierPeriodTicks is the PWM counter top value. The compare
	// thresholds produced by the modulator live in [0, CarrierPeriodTicks].
	CarrierPeriodTicks uint16

	// ControlFrequencyHz is the rate of the control tick that advances the
	// open-loop angle and reruns the modulator.
	ControlFrequencyHz float64

	// TelemetryDivider emits one telemetry line every N control ticks.
	// Zero disables telemetry.
	TelemetryDivider uint32

	// StartFrequencyHz and StartVoltage form the initial open-loop
	// setpoint applied at boot. Both default to zero (drive idle).
	StartFrequencyHz float64
	StartVoltage     float64

	// PhaseA/B/C assign the half-bridge pins for each output phase.
	PhaseA PhasePins
	PhaseB PhasePins
	PhaseC PhasePins
}
