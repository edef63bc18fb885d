// Package monitor captures calibration exports from a connected device's
// serial port.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.bug.st/serial"

	"servocal"
)

// PortNone lets the UI run without a connected device.
const PortNone = "none"

var ErrNoUSBSerial = errors.New("no USB serial ports found")

// Config selects the serial port for a capture session.
type Config struct {
	Port     string
	BaudRate int
}

// Open opens the configured serial port.
func Open(cfg Config) (serial.Port, error) {
	baud := cfg.BaudRate
	if baud == 0 {
		baud = servocal.DefaultBaudRate
	}

	mode := &serial.Mode{
		BaudRate: baud,
	}

	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", cfg.Port, err)
	}
	return port, nil
}

// GetSerialPorts lists ports that look like USB serial devices.
func GetSerialPorts() ([]string, error) {
	all, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	var ports []string
	for _, p := range all {
		lower := strings.ToLower(p)
		if strings.Contains(lower, "usb") || strings.Contains(lower, "acm") {
			ports = append(ports, p)
		}
	}
	if len(ports) == 0 {
		return nil, ErrNoUSBSerial
	}
	return ports, nil
}

// Capture reads the stream until a complete export dump has been seen and
// returns the parsed table. Anything before the header line (boot noise,
// partial lines) is ignored. CRLF and LF line endings are both accepted.
func Capture(r io.Reader) (servocal.Table, error) {
	scanner := bufio.NewScanner(r)

	var table servocal.Table
	seenHeader := false

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if !seenHeader {
			if line == servocal.ExportHeader {
				seenHeader = true
			}
			continue
		}

		if line == servocal.ExportTrailer {
			return table, nil
		}

		channel, bounds, err := servocal.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("bad record %q: %w", line, err)
		}
		if channel != len(table)+1 {
			return nil, fmt.Errorf("out-of-order record %q: expected channel %d", line, len(table)+1)
		}
		table = append(table, bounds)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading export stream: %w", err)
	}
	return nil, errors.New("export stream ended before completion marker")
}
