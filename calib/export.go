package calib

import (
	"io"
	"strings"
	"time"

	"servocal"
)

// Export gesture timing.
const (
	// HoldTime is how long both combo buttons must be held, unbroken,
	// before the export fires.
	HoldTime = 3 * time.Second
	// DotTime is the cadence of the "Hold...." feedback animation.
	DotTime = 500 * time.Millisecond
	// ThrottleTime paces the serial stream between channel records.
	ThrottleTime = 20 * time.Millisecond
	// DoneTime is how long the completion message stays up.
	DoneTime = time.Second

	// ProgressGlyphs caps the progress bar width regardless of channel
	// count.
	ProgressGlyphs = 16
)

// Activity reports what the export controller did with the current tick.
type Activity uint8

const (
	// Inactive: the combo is not held; normal calibration proceeds.
	Inactive Activity = iota
	// Holding: the combo is held (or spent); normal calibration is
	// suppressed this tick.
	Holding
	// Exported: a full table dump was just emitted.
	Exported
)

// Exporter detects the two-button export hold and performs the one-shot
// table dump. The combo buttons are sampled at raw level every tick, not
// through the debouncers, because continuous-hold detection is incompatible
// with a release-reporting debounce.
type Exporter struct {
	store  *Store
	screen *Screen
	out    io.Writer
	clock  Clock

	holding   bool
	holdStart time.Time
	// spent guards re-triggering while the same physical hold continues.
	spent bool
}

func NewExporter(store *Store, screen *Screen, out io.Writer, clock Clock) *Exporter {
	return &Exporter{
		store:  store,
		screen: screen,
		out:    out,
		clock:  clock,
	}
}

// Tick advances the gesture state machine with the raw levels of the two
// combo buttons. Any release resets the hold; a continuous hold past the
// threshold triggers exactly one export.
func (e *Exporter) Tick(a, b bool) Activity {
	if !(a && b) {
		e.holding = false
		e.spent = false
		return Inactive
	}

	if e.spent {
		// Same physical hold continuing after an export.
		return Holding
	}

	now := e.clock.Now()
	if !e.holding {
		e.holding = true
		e.holdStart = now
		e.screen.Status("Hold", "")
		return Holding
	}

	if now.Sub(e.holdStart) >= HoldTime {
		e.holding = false
		e.spent = true
		e.export()
		return Exported
	}

	dots := int(now.Sub(e.holdStart)/DotTime) % 4
	e.screen.Line(0, "Hold"+strings.Repeat(".", dots))
	return Holding
}

// export dumps the whole table to the serial stream with coarse progress
// feedback. Best-effort: storage anomalies already degraded to defaults in
// the Store, and serial write errors are not recoverable here.
func (e *Exporter) export() {
	channels := e.store.Channels()
	step := channels / ProgressGlyphs
	if step < 1 {
		step = 1
	}

	e.screen.Status("Exporting", "")
	e.writeLine(servocal.ExportHeader)

	for i := 0; i < channels; i++ {
		min, max := e.store.Bounds(i)
		e.writeLine(servocal.FormatRecord(i+1, servocal.Bounds{Min: min, Max: max}))
		if (i+1)%step == 0 {
			e.screen.Progress((i + 1) / step)
		}
		e.clock.Sleep(ThrottleTime)
	}

	e.writeLine(servocal.ExportTrailer)
	e.screen.Status("Export done", "")
	e.clock.Sleep(DoneTime)
}

func (e *Exporter) writeLine(line string) {
	_, err := e.out.Write([]byte(line + "\r\n"))
	if err != nil {
		println("export write error:", err.Error())
	}
}
