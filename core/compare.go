package core

// ToCompare scales an ON-time fraction by the carrier period to produce the
// compare threshold for the timer counter: round(duty * (periodTicks+1)),
// clamped to [0, periodTicks]. The clamp absorbs floating-point rounding
// that could otherwise push the value one past the counter's top.
// Monotonic non-decreasing in duty.
func ToCompare(duty float32, periodTicks uint16) uint16 {
	v := int32(duty*float32(uint32(periodTicks)+1) + 0.5)
	if v < 0 {
		return 0
	}
	if v > int32(periodTicks) {
		return periodTicks
	}
	return uint16(v)
}
