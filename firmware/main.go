//go:build tinygo

package main

import (
	"machine"
	"time"

	"servocal"
	"servocal/calib"
	"servocal/firmware/device"
)

// Loop cadence. Fast enough that the 20ms debounce settle window spans
// several ticks.
const tick = 5 * time.Millisecond

func main() {
	servoCfg := device.ServoConfig{
		PWM: machine.PWM3,
		Pin: machine.GP22,
	}
	inputCfg := device.InputConfig{
		Potentiometer: machine.GP26,
		NextButton:    machine.GP10,
		MinButton:     machine.GP11,
		MaxButton:     machine.GP12,
	}
	busCfg := device.BusConfig{
		I2C:         machine.I2C0,
		SDA:         machine.GP4,
		SCL:         machine.GP5,
		DisplayAddr: 0x27,
		EEPROMAddr:  0x50,
	}

	d, err := device.New(servoCfg, inputCfg, busCfg)
	if err != nil {
		panic(err)
	}

	run(d)
}

func run(d *device.Device) {
	clock := calib.WallClock{}
	store := calib.NewStore(d.Storage(), servocal.DefaultChannels)
	screen := calib.NewScreen(d.Display())

	cal := calib.NewCalibrator(store, screen, d, clock)
	exp := calib.NewExporter(store, screen, d, clock)

	var nextBtn, minBtn, maxBtn calib.Debouncer

	for {
		pulse := d.ReadPulse()

		// The export combo reads the min/max buttons at raw level. While it
		// is active the debounced path is bypassed entirely and the display
		// belongs to the exporter.
		if exp.Tick(d.MinActive(), d.MaxActive()) != calib.Inactive {
			minBtn.Reset()
			maxBtn.Reset()
			cal.Invalidate()
			time.Sleep(tick)
			continue
		}

		now := time.Now()
		next := nextBtn.Tick(now, d.NextActive())
		setMin := minBtn.Tick(now, d.MinActive())
		setMax := maxBtn.Tick(now, d.MaxActive())

		cal.Tick(pulse, next, setMin, setMax)

		time.Sleep(tick)
	}
}
