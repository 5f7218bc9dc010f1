package core

// DebugWriter is a function type for writing debug/telemetry lines.
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (set by platform code).
	debugPrintln DebugWriter = func(string) {} // No-op by default

	// debugEnabled controls whether debug output is active.
	// Disabled by default so string assembly never burdens the tick path
	// unless someone is actually listening.
	debugEnabled bool
)

// SetDebugWriter sets the platform-specific debug output function.
// This allows platforms to redirect output to UART, USB CDC, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled.
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug line using the platform-specific writer.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// FormatStateLine renders one telemetry record in the line format the host
// monitor parses:
//
//	sv tick=<n> up=<µs> sector=<s> t1=<f> t2=<f> t0=<f> a=<n> b=<n> c=<n> angle=<f>
//
// uptimeUS is the hardware's 64-bit microsecond counter, which lets the host
// place samples in time even though tick counts restart with the firmware.
// Built without fmt to keep the TinyGo binary small and the formatting
// allocation-light.
func FormatStateLine(tick uint32, uptimeUS uint64, angle float32, m Modulation) string {
	return "sv tick=" + itoa(int(tick)) +
		" up=" + utoa(uptimeUS) +
		" sector=" + itoa(int(m.Sector)) +
		" t1=" + ftoa(m.T1) +
		" t2=" + ftoa(m.T2) +
		" t0=" + ftoa(m.T0) +
		" a=" + itoa(int(m.CompareA)) +
		" b=" + itoa(int(m.CompareB)) +
		" c=" + itoa(int(m.CompareC)) +
		" angle=" + ftoa(angle)
}
