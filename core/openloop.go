package core

import "math"

const twoPi float32 = 2 * math.Pi

// OpenLoop integrates a commanded electrical frequency into an electrical
// angle and derives the stationary-frame voltage vector fed to the
// modulator. It is the sole producer of that vector and runs at the same
// control-loop cadence.
type OpenLoop struct {
	angle     float32 // electrical angle [rad], kept in [0, 2π)
	omega     float32 // commanded angular velocity [rad/s], signed
	magnitude float32 // commanded vector magnitude, normalized [0, 1]
	dt        float32 // control period [s]
}

// NewOpenLoop returns a generator ticking at controlHz with zero speed and
// zero magnitude.
func NewOpenLoop(controlHz float32) *OpenLoop {
	return &OpenLoop{dt: 1 / controlHz}
}

// SetSpeed commands a new electrical frequency and voltage magnitude.
// freqHz is signed; a negative frequency reverses the rotation direction.
// voltage is clamped into [0, 1]. The change is a plain step that takes
// effect on the next tick, with no ramping.
func (o *OpenLoop) SetSpeed(freqHz, voltage float32) {
	o.omega = twoPi * freqHz
	if voltage > 1 {
		voltage = 1
	} else if voltage < 0 {
		voltage = 0
	}
	o.magnitude = voltage
}

// Tick advances the angle by one control period and returns the vector
// magnitude*(cos, sin). The wrap correction runs at most once per tick:
// omega stays well below 2π/dt in any intended operating range.
func (o *OpenLoop) Tick() (valpha, vbeta float32) {
	o.angle += o.omega * o.dt
	if o.angle >= twoPi {
		o.angle -= twoPi
	} else if o.angle < 0 {
		o.angle += twoPi
	}
	valpha = o.magnitude * float32(math.Cos(float64(o.angle)))
	vbeta = o.magnitude * float32(math.Sin(float64(o.angle)))
	return valpha, vbeta
}

// Angle returns the current electrical angle in radians.
func (o *OpenLoop) Angle() float32 {
	return o.angle
}
