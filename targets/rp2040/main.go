//go:build rp2040 || rp2350

package main

import (
	"machine"

	"svdrive/core"
	"svdrive/standalone/config"
)

func main() {
	cfg := config.DefaultDriveConfig()

	// Register the inverter driver before the control loop exists; a Run
	// before registration would be a silent no-op.
	drv := NewRPInverterDriver(cfg)
	core.SetInverterDriver(drv)

	// Telemetry goes out over USB CDC.
	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)

	loop := core.NewControlLoop(float32(cfg.ControlFrequencyHz), cfg.CarrierPeriodTicks)
	loop.Angle.SetSpeed(float32(cfg.StartFrequencyHz), float32(cfg.StartVoltage))
	loop.Start()

	lastEmit := uint32(0)
	for {
		core.SetTime(GetHardwareTime())
		core.ProcessTimers()

		// Telemetry is emitted from the idle loop, never from inside the
		// tick handler, so string assembly cannot eat into the control
		// deadline.
		if div := cfg.TelemetryDivider; div != 0 {
			if n := loop.Ticks(); n-lastEmit >= div {
				lastEmit = n
				core.DebugPrintln(core.FormatStateLine(n, GetHardwareUptime(), loop.Angle.Angle(), loop.Mod.State()))
			}
		}
	}
}
