package calib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibrationLayout(t *testing.T) {
	disp := newFakeDisplay()
	screen := NewScreen(disp)

	screen.Calibration(4, 1500, 1200, 1800, true)

	assert.Equal(t, "CH 4   PW 1500  ", disp.Line(0))
	assert.Equal(t, "L 1200  H 1800  ", disp.Line(1))
}

func TestFieldPaddingErasesStaleDigits(t *testing.T) {
	disp := newFakeDisplay()
	screen := NewScreen(disp)

	screen.Calibration(18, 2500, 1000, 2000, true)
	screen.Calibration(1, 500, 1000, 2000, false)

	// Shorter values are padded with trailing spaces so no digit from the
	// previous render survives.
	assert.Equal(t, "CH 1   PW 500   ", disp.Line(0))
}

func TestInPlaceUpdateDoesNotClear(t *testing.T) {
	disp := newFakeDisplay()
	screen := NewScreen(disp)

	screen.Calibration(1, 1500, 1000, 2000, true)
	clears := disp.clears

	screen.Calibration(1, 1501, 1000, 2000, false)
	assert.Equal(t, clears, disp.clears)

	screen.Calibration(2, 1501, 1000, 2000, true)
	assert.Equal(t, clears+1, disp.clears)
}

func TestStatusPadsFullWidth(t *testing.T) {
	disp := newFakeDisplay()
	screen := NewScreen(disp)

	screen.Calibration(1, 1500, 1000, 2000, true)
	screen.Status("Min saved", "")

	assert.Equal(t, "Min saved       ", disp.Line(0))
	assert.Equal(t, strings.Repeat(" ", Columns), disp.Line(1))
}

func TestLineOverwritesInPlace(t *testing.T) {
	disp := newFakeDisplay()
	screen := NewScreen(disp)

	screen.Line(0, "Hold...")
	screen.Line(0, "Hold")

	assert.Equal(t, "Hold            ", disp.Line(0))
}

func TestProgressClampsToWidth(t *testing.T) {
	disp := newFakeDisplay()
	screen := NewScreen(disp)

	screen.Progress(3)
	assert.Equal(t, "###             ", disp.Line(1))

	screen.Progress(18)
	assert.Equal(t, strings.Repeat("#", Columns), disp.Line(1))
}

func TestPadTruncatesOverflow(t *testing.T) {
	assert.Equal(t, "abcd", pad("abcdef", 4))
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abcd", pad("abcd", 4))
}
