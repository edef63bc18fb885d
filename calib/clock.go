package calib

import "time"

// Clock provides the current time and bounded sleeps to the calibration
// loop. Injected so the state machines can be driven deterministically in
// tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// WallClock is the real clock used on the device.
type WallClock struct{}

var _ Clock = WallClock{}

func (WallClock) Now() time.Time        { return time.Now() }
func (WallClock) Sleep(d time.Duration) { time.Sleep(d) }
