//go:build !tinygo

package core

var systemTicksValue uint32

// getSystemTicks returns the current system ticks (regular Go, test-driven).
func getSystemTicks() uint32 {
	return systemTicksValue
}

// setSystemTicks sets the system ticks (regular Go, test-driven).
func setSystemTicks(ticks uint32) {
	systemTicksValue = ticks
}
