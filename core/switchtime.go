package core

// Switching-time solver
// Computes the normalized dwell ratios for the two active vectors bounding
// the current sector plus the zero-vector remainder (volt-second balance).

// SolveTimes returns the active-vector time ratios t1, t2 and the
// zero-vector ratio t0 for one carrier period. The intermediates X, Y, Z
// are proportional to the projections of (valpha, vbeta) onto the active
// vector axes; each sector picks its pair from them or their negations.
//
// Post-processing clamps t1 and t2 to be non-negative (numerical or
// degenerate results can dip below zero) and handles overmodulation: when
// the commanded magnitude exceeds the linear range (t1+t2 > 1) both ratios
// are rescaled proportionally and the zero-vector time collapses to zero.
// After that, t1 >= 0, t2 >= 0, t0 >= 0 and t1+t2+t0 == 1 within
// floating-point tolerance.
func SolveTimes(valpha, vbeta float32, sector Sector) (t1, t2, t0 float32) {
	x := sqrt3 * vbeta
	y := 1.5*valpha + sqrt3Half*vbeta
	z := -1.5*valpha + sqrt3Half*vbeta

	switch sector {
	case Sector1:
		t1, t2 = y, x
	case Sector2:
		t1, t2 = -z, y
	case Sector3:
		t1, t2 = x, z
	case Sector4:
		t1, t2 = -y, -x
	case Sector5:
		t1, t2 = z, -y
	case Sector6:
		t1, t2 = -x, -z
	default:
		// Zero vector: no active-vector dwell at all.
		t1, t2 = 0, 0
	}

	if t1 < 0 {
		t1 = 0
	}
	if t2 < 0 {
		t2 = 0
	}

	sum := t1 + t2
	if sum > 1 {
		// t2 is derived from the rescaled t1 so the pair sums to exactly
		// one; dividing both can leave the sum an ulp high and push a
		// mapped duty past 1.
		t1 /= sum
		t2 = 1 - t1
		t0 = 0
	} else {
		t0 = 1 - sum
	}
	return t1, t2, t0
}
