// Package serialpin drives a LED wired to the DTR line of a (USB) serial
// adapter.
package serialpin

import (
	"fmt"

	"go.bug.st/serial"
)

// Setter drives the DTR line of an open serial port
type Setter struct {
	port serial.Port
}

// New opens the serial device. The baud rate is meaningless for DTR
// signalling, but we need one to open the port.
func New(device string) (*Setter, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: 9600})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, err)
	}
	return &Setter{port: port}, nil
}

// SetLED raises or drops the DTR line
func (s *Setter) SetLED(state bool) error {
	return s.port.SetDTR(state)
}

// Close closes the serial port
func (s *Setter) Close() error {
	return s.port.Close()
}
