package core

import (
	"math"
	"testing"
)

func TestOpenLoopAngleWrap(t *testing.T) {
	o := NewOpenLoop(10000)
	o.SetSpeed(50, 0.5)

	const ticks = 777
	for i := 0; i < ticks; i++ {
		o.Tick()
	}

	angle := float64(o.Angle())
	if angle < 0 || angle >= 2*math.Pi {
		t.Fatalf("angle %v outside [0, 2π)", angle)
	}

	want := math.Mod(2*math.Pi*50*ticks*1e-4, 2*math.Pi)
	if math.Abs(angle-want) > 5e-3 {
		t.Errorf("after %d ticks: angle = %v, want %v", ticks, angle, want)
	}
}

func TestOpenLoopReverseRotation(t *testing.T) {
	o := NewOpenLoop(10000)
	o.SetSpeed(-50, 0.5)

	o.Tick()
	angle := float64(o.Angle())

	// One tick backwards from zero wraps to just under 2π.
	want := 2*math.Pi - 2*math.Pi*50*1e-4
	if math.Abs(angle-want) > 1e-4 {
		t.Errorf("angle = %v, want %v", angle, want)
	}

	for i := 0; i < 500; i++ {
		o.Tick()
	}
	if a := float64(o.Angle()); a < 0 || a >= 2*math.Pi {
		t.Errorf("angle %v left [0, 2π) under reverse rotation", a)
	}
}

func TestOpenLoopMagnitudeClamp(t *testing.T) {
	o := NewOpenLoop(10000)

	o.SetSpeed(10, 1.5)
	va, vb := o.Tick()
	if mag := math.Hypot(float64(va), float64(vb)); math.Abs(mag-1) > 1e-5 {
		t.Errorf("voltage 1.5 should clamp to magnitude 1, got %v", mag)
	}

	o.SetSpeed(10, -0.25)
	va, vb = o.Tick()
	if va != 0 || vb != 0 {
		t.Errorf("negative voltage should clamp to zero vector, got (%v, %v)", va, vb)
	}
}

func TestOpenLoopProjection(t *testing.T) {
	o := NewOpenLoop(10000)
	o.SetSpeed(50, 0.5)

	va, vb := o.Tick()
	angle := 2 * math.Pi * 50 * 1e-4
	wantA := 0.5 * math.Cos(angle)
	wantB := 0.5 * math.Sin(angle)
	if math.Abs(float64(va)-wantA) > 1e-5 || math.Abs(float64(vb)-wantB) > 1e-5 {
		t.Errorf("got (%v, %v), want (%v, %v)", va, vb, wantA, wantB)
	}
}

func TestOpenLoopSpeedStepsAtTickBoundary(t *testing.T) {
	o := NewOpenLoop(10000)
	o.SetSpeed(50, 0.5)
	o.Tick()
	first := o.Angle()

	// A setpoint write between ticks must not move the angle by itself.
	o.SetSpeed(100, 0.5)
	if o.Angle() != first {
		t.Fatal("SetSpeed moved the angle outside a tick")
	}

	o.Tick()
	delta := float64(o.Angle() - first)
	want := 2 * math.Pi * 100 * 1e-4
	if math.Abs(delta-want) > 1e-5 {
		t.Errorf("post-step increment = %v, want %v", delta, want)
	}
}
