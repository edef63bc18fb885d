package calib

import "strconv"

// Display is the character display capability: two fixed-width lines of
// text, cursor-addressable.
type Display interface {
	Clear()
	WriteAt(col, row int, text string)
}

// Screen layout, 16 columns:
//
//	CH 18  PW 2500
//	L 1000  H 2000
const (
	Columns = 16

	chCol   = 3
	chWide  = 2
	pwCol   = 10
	minCol  = 2
	maxCol  = 10
	valWide = 4
)

// Screen formats calibrator state onto a two-line display. Every dynamic
// field is padded with trailing spaces to its maximum width so a shorter
// value always erases the previous one. A full clear is issued only when
// the displayed identity changes, to avoid flicker.
type Screen struct {
	disp Display
}

func NewScreen(disp Display) *Screen {
	return &Screen{disp: disp}
}

// Calibration renders the normal view: 1-based channel number, live pulse
// width and the stored bounds. With full set it clears and rewrites the
// labels too; otherwise only the value fields are updated in place.
func (s *Screen) Calibration(channel int, pulse, min, max uint16, full bool) {
	if full {
		s.disp.Clear()
		s.disp.WriteAt(0, 0, "CH")
		s.disp.WriteAt(7, 0, "PW")
		s.disp.WriteAt(0, 1, "L")
		s.disp.WriteAt(8, 1, "H")
	}
	s.disp.WriteAt(chCol, 0, pad(strconv.Itoa(channel), chWide))
	s.disp.WriteAt(pwCol, 0, pad(itoa(pulse), valWide))
	s.disp.WriteAt(minCol, 1, pad(itoa(min), valWide))
	s.disp.WriteAt(maxCol, 1, pad(itoa(max), valWide))
}

// Status clears the display and shows a transient two-line message.
func (s *Screen) Status(line1, line2 string) {
	s.disp.Clear()
	s.disp.WriteAt(0, 0, pad(line1, Columns))
	s.disp.WriteAt(0, 1, pad(line2, Columns))
}

// Line rewrites one line in place, padded to the full width.
func (s *Screen) Line(row int, text string) {
	s.disp.WriteAt(0, row, pad(text, Columns))
}

// Progress renders n progress glyphs on the second line, clamped to the
// display width.
func (s *Screen) Progress(n int) {
	if n > Columns {
		n = Columns
	}
	glyphs := make([]byte, n)
	for i := range glyphs {
		glyphs[i] = '#'
	}
	s.disp.WriteAt(0, 1, pad(string(glyphs), Columns))
}

func pad(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	for len(text) < width {
		text += " "
	}
	return text
}

func itoa(v uint16) string {
	return strconv.FormatUint(uint64(v), 10)
}
