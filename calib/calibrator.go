package calib

import "time"

// StatusTime is how long a "Min saved"/"Max saved" message stays on the
// display before normal rendering resumes.
const StatusTime = 500 * time.Millisecond

// Actuator is the servo output capability, commanded in microseconds.
type Actuator interface {
	SetPulse(us uint16)
}

// ScalePulse maps a raw 16-bit analog reading linearly onto the valid
// pulse-width range.
func ScalePulse(raw uint16) uint16 {
	span := uint32(PulseMax - PulseMin)
	return PulseMin + uint16(uint32(raw)*span/0xFFFF)
}

// Calibrator owns the channel cursor and live pulse width, and applies the
// three debounced actions against the Store.
type Calibrator struct {
	store  *Store
	screen *Screen
	out    Actuator
	clock  Clock

	cursor int
	pulse  uint16
	dirty  bool
}

func NewCalibrator(store *Store, screen *Screen, out Actuator, clock Clock) *Calibrator {
	return &Calibrator{
		store:  store,
		screen: screen,
		out:    out,
		clock:  clock,
		dirty:  true,
	}
}

// Cursor returns the current 0-based channel index.
func (c *Calibrator) Cursor() int {
	return c.cursor
}

// Invalidate forces the next render to be a full clear and redraw. Called
// after the export routine has freely overwritten the display.
func (c *Calibrator) Invalidate() {
	c.dirty = true
}

// Tick runs one control cycle: drive the actuator with the live reading,
// apply any debounced actions, then refresh the display. Bounds are read
// back from storage every cycle so externally-defaulted values show up
// immediately.
func (c *Calibrator) Tick(pulse uint16, next, setMin, setMax bool) {
	c.pulse = pulse
	c.out.SetPulse(pulse)

	if next {
		c.cursor = (c.cursor + 1) % c.store.Channels()
		// The displayed channel identity changed: full redraw.
		c.dirty = true
	}
	if setMin {
		c.save(BoundMin)
	}
	if setMax {
		c.save(BoundMax)
	}

	min, max := c.store.Bounds(c.cursor)
	c.screen.Calibration(c.cursor+1, c.pulse, min, max, c.dirty)
	c.dirty = false
}

func (c *Calibrator) save(kind BoundKind) {
	err := c.store.Save(Slot{Channel: c.cursor, Kind: kind}, c.pulse)
	if err != nil {
		println("save error:", err.Error())
	}

	c.screen.Status(kind.String()+" saved", "")
	c.clock.Sleep(StatusTime)
	c.dirty = true
}
