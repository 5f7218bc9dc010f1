package core

// PhaseChannel identifies one inverter output phase.
type PhaseChannel uint8

const (
	PhaseA PhaseChannel = iota
	PhaseB
	PhaseC
)

// InverterDriver is the abstract three-phase PWM interface that core code
// uses. Platform-specific implementations own the timer peripheral: they
// must latch compare writes at the carrier boundary (update event) and are
// responsible for complementary-leg and output-enable control, none of
// which the core models.
type InverterDriver interface {
	// SetCompare sets the compare threshold for one phase channel.
	// value is in counter ticks, already clamped to [0, periodTicks].
	SetCompare(ch PhaseChannel, value uint16)

	// StartOutputs enables the three PWM output stages.
	StartOutputs()

	// StopOutputs disables the three PWM output stages.
	StopOutputs()
}

// Global singleton used by core code.
var inverterDriver InverterDriver

// SetInverterDriver is called by target-specific code to register its driver.
func SetInverterDriver(d InverterDriver) {
	inverterDriver = d
}

// Inverter returns the registered driver, or nil when none is configured.
// Unlike setup-time peripherals this accessor never panics: Run and Stop
// execute inside a hard-deadline tick handler and must degrade to no-ops
// when the driver is missing.
func Inverter() InverterDriver {
	return inverterDriver
}
