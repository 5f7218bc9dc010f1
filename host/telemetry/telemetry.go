// Package telemetry parses the state lines the firmware emits over its
// debug serial link. One line per sample:
//
//	sv tick=<n> up=<µs> sector=<s> t1=<f> t2=<f> t0=<f> a=<n> b=<n> c=<n> angle=<f>
package telemetry

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one parsed telemetry sample.
type Record struct {
	Tick   uint32
	Sector int

	// Firmware uptime in microseconds when the sample was emitted.
	UptimeUS uint64

	// Dwell ratios of the last control tick.
	T1 float64
	T2 float64
	T0 float64

	// Compare thresholds in carrier counter ticks.
	CompareA uint16
	CompareB uint16
	CompareC uint16

	// Electrical angle in radians.
	Angle float64
}

// ParseLine parses one "sv key=value ..." line. Unknown keys are skipped so
// newer firmware can add fields without breaking older monitors; malformed
// values in known keys are errors.
func ParseLine(line string) (Record, error) {
	var r Record

	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 || fields[0] != "sv" {
		return r, fmt.Errorf("not a telemetry line: %q", line)
	}

	for _, f := range fields[1:] {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return r, fmt.Errorf("malformed field %q", f)
		}

		var err error
		switch key {
		case "tick":
			var n uint64
			n, err = strconv.ParseUint(value, 10, 32)
			r.Tick = uint32(n)
		case "up":
			r.UptimeUS, err = strconv.ParseUint(value, 10, 64)
		case "sector":
			r.Sector, err = strconv.Atoi(value)
		case "t1":
			r.T1, err = strconv.ParseFloat(value, 64)
		case "t2":
			r.T2, err = strconv.ParseFloat(value, 64)
		case "t0":
			r.T0, err = strconv.ParseFloat(value, 64)
		case "a":
			var n uint64
			n, err = strconv.ParseUint(value, 10, 16)
			r.CompareA = uint16(n)
		case "b":
			var n uint64
			n, err = strconv.ParseUint(value, 10, 16)
			r.CompareB = uint16(n)
		case "c":
			var n uint64
			n, err = strconv.ParseUint(value, 10, 16)
			r.CompareC = uint16(n)
		case "angle":
			r.Angle, err = strconv.ParseFloat(value, 64)
		default:
			// Ignore fields this monitor does not know about.
		}
		if err != nil {
			return r, fmt.Errorf("field %q: %w", f, err)
		}
	}

	return r, nil
}
