package serial

import (
	"io"
)

// Port represents a serial port interface.
// The abstraction keeps the monitor testable with an in-memory
// implementation while the native build uses github.com/tarm/serial.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored for USB CDC, which is what the RP2040 target uses)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for the telemetry link
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0, // telemetry tailing wants blocking reads
	}
}
