package core

// Duty mapping for a center-aligned symmetric carrier
//
// Within one carrier period the up-down counter realizes the sequence
// Zero -> Active1 -> Active2 -> Zero -> Active2 -> Active1 -> Zero, with
// half the zero time on each side of the counter peak. Each phase switches
// at most twice per period, which is what makes center-aligned SVPWM
// cheaper in switching losses than edge-aligned schemes.

// MapDuties converts the dwell ratios of one sector into per-phase ON-time
// fractions in [0, 1]. For example in sector 1 the pattern is
// 000 -> 100 -> 110 -> 111 and back: phase A is high during V1, V2 and the
// 111 zero state (t1+t2+t0/2), phase B during V2 and 111 (t2+t0/2), and
// phase C only during 111 (t0/2).
//
// The degenerate zero-vector sector maps to 50% duty on all three phases,
// which keeps the line-to-line output at zero volts.
func MapDuties(sector Sector, t1, t2, t0 float32) (a, b, c float32) {
	h := t0 * 0.5

	switch sector {
	case Sector1: // 000 -> 100 -> 110 -> 111
		a = t1 + t2 + h
		b = t2 + h
		c = h
	case Sector2: // 000 -> 010 -> 110 -> 111
		a = t1 + h
		b = t1 + t2 + h
		c = h
	case Sector3: // 000 -> 010 -> 011 -> 111
		a = h
		b = t1 + t2 + h
		c = t2 + h
	case Sector4: // 000 -> 001 -> 011 -> 111
		a = h
		b = t1 + h
		c = t1 + t2 + h
	case Sector5: // 000 -> 001 -> 101 -> 111
		a = t2 + h
		b = h
		c = t1 + t2 + h
	case Sector6: // 000 -> 100 -> 101 -> 111
		a = t1 + t2 + h
		b = h
		c = t1 + h
	default:
		a, b, c = 0.5, 0.5, 0.5
	}
	return a, b, c
}
