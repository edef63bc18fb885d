package calib

import "time"

// SettleTime is how long a button must read active before a press is
// considered real.
const SettleTime = 20 * time.Millisecond

type debounceState uint8

const (
	stateIdle debounceState = iota
	stateSettling
	stateHeld
)

// Debouncer turns a raw noisy button level into clean press events. It is a
// small state machine advanced once per loop tick so the control loop never
// blocks waiting for a release: a settled press reports exactly one event,
// on release, no matter how long the button is held.
type Debouncer struct {
	state debounceState
	since time.Time
}

// Tick advances the state machine with the button's raw level ("active"
// already accounts for pull-up polarity). It returns true exactly once per
// physical press.
func (d *Debouncer) Tick(now time.Time, active bool) bool {
	switch d.state {
	case stateIdle:
		if active {
			d.state = stateSettling
			d.since = now
		}
	case stateSettling:
		if !active {
			// Noise: the level reverted before the settle window.
			d.state = stateIdle
		} else if now.Sub(d.since) >= SettleTime {
			d.state = stateHeld
		}
	case stateHeld:
		if !active {
			d.state = stateIdle
			return true
		}
	}
	return false
}

// Reset discards any in-progress press. Used when the export combo takes
// over the buttons, so a half-tracked press cannot fire later.
func (d *Debouncer) Reset() {
	d.state = stateIdle
}
