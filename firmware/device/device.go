//go:build tinygo

package device

import (
	"errors"
	"machine"

	"servocal/calib"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/hd44780i2c"
	"tinygo.org/x/drivers/servo"
)

// Device binds the calibrator's capabilities to real hardware: servo output,
// 16x2 character display, I2C EEPROM, potentiometer and buttons, plus the
// USB serial for the export stream.
type Device struct {
	servo  servo.Servo
	lcd    hd44780i2c.Device
	eeprom at24cx.Device

	pot  machine.ADC
	next machine.Pin
	min  machine.Pin
	max  machine.Pin
}

// New configures all peripherals with the provided configs
func New(servoCfg ServoConfig, inputCfg InputConfig, busCfg BusConfig) (*Device, error) {
	myServo, err := servo.New(servoCfg.PWM, servoCfg.Pin)
	if err != nil {
		return nil, errors.New("error creating servo: " + err.Error())
	}

	err = busCfg.I2C.Configure(machine.I2CConfig{
		SDA:       busCfg.SDA,
		SCL:       busCfg.SCL,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return nil, errors.New("error configuring i2c: " + err.Error())
	}

	lcd := hd44780i2c.New(busCfg.I2C, busCfg.DisplayAddr)
	err = lcd.Configure(hd44780i2c.Config{
		Width:  calib.Columns,
		Height: 2,
	})
	if err != nil {
		return nil, errors.New("error configuring display: " + err.Error())
	}

	eeprom := at24cx.New(busCfg.I2C)
	eeprom.Address = busCfg.EEPROMAddr
	eeprom.Configure(at24cx.Config{})

	machine.InitADC()
	pot := machine.ADC{Pin: inputCfg.Potentiometer}
	pot.Configure(machine.ADCConfig{})

	for _, pin := range []machine.Pin{inputCfg.NextButton, inputCfg.MinButton, inputCfg.MaxButton} {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	return &Device{
		servo:  myServo,
		lcd:    lcd,
		eeprom: eeprom,
		pot:    pot,
		next:   inputCfg.NextButton,
		min:    inputCfg.MinButton,
		max:    inputCfg.MaxButton,
	}, nil
}

// ReadPulse samples the potentiometer and scales it to the pulse-width
// range.
func (d *Device) ReadPulse() uint16 {
	return calib.ScalePulse(d.pot.Get())
}

// Button levels. Wired active-low, so a low signal means pressed.
func (d *Device) NextActive() bool { return !d.next.Get() }
func (d *Device) MinActive() bool  { return !d.min.Get() }
func (d *Device) MaxActive() bool  { return !d.max.Get() }

// SetPulse implements calib.Actuator.
func (d *Device) SetPulse(us uint16) {
	err := d.servo.SetMicroseconds(int16(us))
	if err != nil {
		println("error setting servo pulse:", err.Error())
	}
}

// Display returns the two-line text capability backed by the LCD.
func (d *Device) Display() calib.Display {
	return lcdDisplay{lcd: &d.lcd}
}

// Storage returns the non-volatile byte store backed by the EEPROM.
func (d *Device) Storage() calib.ByteStore {
	return eepromStore{rom: &d.eeprom}
}

// Write sends export bytes out the USB serial.
func (d *Device) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}

type lcdDisplay struct {
	lcd *hd44780i2c.Device
}

func (l lcdDisplay) Clear() {
	l.lcd.ClearDisplay()
}

func (l lcdDisplay) WriteAt(col, row int, text string) {
	l.lcd.SetCursor(uint8(col), uint8(row))
	l.lcd.Print([]byte(text))
}

type eepromStore struct {
	rom *at24cx.Device
}

func (s eepromStore) ReadAt(p []byte, off int64) (int, error) {
	return s.rom.ReadAt(p, off)
}

func (s eepromStore) WriteAt(p []byte, off int64) (int, error) {
	return s.rom.WriteAt(p, off)
}
