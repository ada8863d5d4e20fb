// Package serial opens the host side of the monitor link
package serial

import (
	"errors"
	"io"
	"time"
)

// Port represents a serial port. Tests substitute in-memory pipes.
type Port interface {
	io.ReadWriteCloser

	// Flush discards unread input and unsent output
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate; must match the target's uart.Configure call
	Baud int

	// Read timeout (0 = blocking)
	ReadTimeout time.Duration
}

// DefaultBaud is the rate the firmware configures for the monitor UART
const DefaultBaud = 115200

var (
	ErrNoDevice    = errors.New("serial: no device given")
	ErrInvalidBaud = errors.New("serial: invalid baud rate")
)

// DefaultConfig returns the configuration the firmware expects
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Validate checks the configuration before a port is opened
func (c *Config) Validate() error {
	if c.Device == "" {
		return ErrNoDevice
	}
	if c.Baud <= 0 {
		return ErrInvalidBaud
	}
	return nil
}
