//go:build rp2040 || rp2350

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"svdrive/core"
	"svdrive/standalone"
)

// RP2040 PWM peripheral memory map (per-slice register block)
const (
	pwmBase      = 0x40050000
	pwmSliceSize = 0x14

	pwmCSROffset = 0x00
	pwmDIVOffset = 0x04
	pwmCTROffset = 0x08
	pwmCCOffset  = 0x0C
	pwmTOPOffset = 0x10

	// CSR bits
	csrEN        = 1 << 0 // slice enabled
	csrPhCorrect = 1 << 1 // dual-slope (up-down) counting
	csrBInv      = 1 << 3 // invert channel B output
)

// pwmSlice gives register-level access to one of the eight RP2040 PWM
// slices. The TinyGo machine API does not expose phase-correct mode, so the
// driver programs the slice directly, in the same style as the hardware
// clock access in clock.go.
type pwmSlice uint8

func (s pwmSlice) reg(offset uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(pwmBase) + uintptr(s)*pwmSliceSize + offset))
}

// sliceForPin maps a GPIO number to its PWM slice.
// RP2040: GPIO pin N belongs to slice (N >> 1) & 0x7, channel N & 1.
func sliceForPin(pin uint8) pwmSlice {
	return pwmSlice((pin >> 1) & 0x7)
}

// RPInverterDriver implements core.InverterDriver on three RP2040 PWM
// slices in phase-correct mode. Each phase uses one full slice: channel A
// carries the high-side gate and channel B, output-inverted, the low-side
// gate. The RP2040 PWM has no dead-time insertion; gate drivers must
// provide their own dead time or the bridge must tolerate shoot-through
// protection elsewhere.
type RPInverterDriver struct {
	slices [3]pwmSlice
	period uint16
}

// NewRPInverterDriver configures the three phase slices for the given
// carrier period but leaves the outputs disabled until StartOutputs.
//
// In phase-correct mode the counter ramps 0 -> TOP -> 0, so the carrier
// frequency is sysclk / (2 * (TOP + 1)); at the default 125 MHz system
// clock and TOP = 8499 that is about 7.35 kHz.
func NewRPInverterDriver(cfg *standalone.DriveConfig) *RPInverterDriver {
	d := &RPInverterDriver{period: cfg.CarrierPeriodTicks}

	phases := [3]standalone.PhasePins{cfg.PhaseA, cfg.PhaseB, cfg.PhaseC}
	for i, ph := range phases {
		// High and low pins of one phase must share a slice (even/odd
		// GPIO pair); the config defaults guarantee this.
		sl := sliceForPin(ph.High)
		d.slices[i] = sl

		machine.Pin(ph.High).Configure(machine.PinConfig{Mode: machine.PinPWM})
		machine.Pin(ph.Low).Configure(machine.PinConfig{Mode: machine.PinPWM})

		sl.reg(pwmDIVOffset).Set(1 << 4) // integer divider 1 (8.4 fixed point)
		sl.reg(pwmTOPOffset).Set(uint32(d.period))
		sl.reg(pwmCCOffset).Set(0)
		sl.reg(pwmCTROffset).Set(0)
		sl.reg(pwmCSROffset).Set(csrPhCorrect | csrBInv)
	}
	return d
}

// SetCompare writes one phase's compare threshold. Both channels of the
// slice get the same threshold; the inverted B output turns that into the
// complementary low-side signal. The hardware latches CC at the start of
// the next period, so mid-carrier writes never glitch the current cycle.
func (d *RPInverterDriver) SetCompare(ch core.PhaseChannel, value uint16) {
	v := uint32(value)
	d.slices[ch].reg(pwmCCOffset).Set(v | v<<16)
}

// StartOutputs enables the three phase slices. Counters are rezeroed first
// so the carriers start aligned.
func (d *RPInverterDriver) StartOutputs() {
	for _, sl := range d.slices {
		sl.reg(pwmCTROffset).Set(0)
	}
	for _, sl := range d.slices {
		sl.reg(pwmCSROffset).SetBits(csrEN)
	}
}

// StopOutputs freezes the three slices and zeroes their compares, forcing
// the high sides low (and the inverted low sides high, i.e. the bottom
// switches conduct — the safe zero state for a grounded-star load).
func (d *RPInverterDriver) StopOutputs() {
	for _, sl := range d.slices {
		sl.reg(pwmCSROffset).ClearBits(csrEN)
		sl.reg(pwmCCOffset).Set(0)
	}
}
