//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers/servo"
)

// ServoConfig has device-level values for setting up the servo output
type ServoConfig struct {
	Pin machine.Pin
	PWM servo.PWM
}

// InputConfig wires the potentiometer and the three calibration buttons.
// Buttons are active-low with pull-up bias.
type InputConfig struct {
	Potentiometer machine.Pin
	NextButton    machine.Pin
	MinButton     machine.Pin
	MaxButton     machine.Pin
}

// BusConfig wires the shared I2C bus carrying the character display and the
// EEPROM.
type BusConfig struct {
	I2C         *machine.I2C
	SDA         machine.Pin
	SCL         machine.Pin
	DisplayAddr uint8
	EEPROMAddr  uint16
}
