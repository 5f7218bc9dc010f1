// Sector classification for SVPWM
// Maps a stationary-frame voltage vector to one of the six 60° regions
// of the voltage plane without any transcendental calls.
package core

// Sector identifies one of the six 60° wedges of the alpha-beta voltage
// plane, each bounded by two adjacent active switching vectors.
// SectorNone is the degenerate zero-vector case (valpha == vbeta == 0),
// which has no defined direction; it is kept as a distinct value rather
// than being folded into Sector1 so the zero-vector fallback stays visible
// in telemetry.
type Sector uint8

const (
	SectorNone Sector = iota
	Sector1           // 0° to 60°: V1(100) to V2(110)
	Sector2           // 60° to 120°: V2(110) to V3(010)
	Sector3           // 120° to 180°: V3(010) to V4(011)
	Sector4           // 180° to 240°: V4(011) to V5(001)
	Sector5           // 240° to 300°: V5(001) to V6(101)
	Sector6           // 300° to 360°: V6(101) to V1(100)
)

const (
	sqrt3     = 1.7320508 // √3
	sqrt3Half = 0.8660254 // √3/2
)

// sectorTable maps the three-bit sign pattern of the reference projections
// to a sector. Index is bitA + 2*bitB + 4*bitC. Entries 0 and 7 are only
// reachable at the exact zero vector: with vbeta > 0 the sum ref2+ref3
// equals -vbeta, so ref2 and ref3 cannot both be positive, and with
// vbeta <= 0 bitA is already clear.
var sectorTable = [8]Sector{
	SectorNone, Sector2, Sector6, Sector1,
	Sector4, Sector3, Sector5, SectorNone,
}

// ClassifySector determines which sector the vector (valpha, vbeta) lies
// in using three linear sign tests against the sector boundary lines.
// This is a closed-form replacement for an arctangent lookup and keeps
// the control tick free of transcendental calls.
func ClassifySector(valpha, vbeta float32) Sector {
	ref1 := vbeta
	ref2 := sqrt3Half*valpha - 0.5*vbeta
	ref3 := -sqrt3Half*valpha - 0.5*vbeta

	idx := 0
	if ref1 > 0 {
		idx |= 1
	}
	if ref2 > 0 {
		idx |= 2
	}
	if ref3 > 0 {
		idx |= 4
	}
	return sectorTable[idx]
}
