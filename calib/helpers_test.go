package calib

import (
	"errors"
	"strconv"
	"time"
)

// memStore is an in-memory ByteStore. Fresh storage reads 0xFF like an
// unwritten EEPROM.
type memStore struct {
	data []byte
}

func newMemStore(size int) *memStore {
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &memStore{data: data}
}

func (m *memStore) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || int(off)+len(p) > len(m.data) {
		return 0, errors.New("read out of range")
	}
	return copy(p, m.data[off:]), nil
}

func (m *memStore) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || int(off)+len(p) > len(m.data) {
		return 0, errors.New("write out of range")
	}
	return copy(m.data[off:], p), nil
}

// failStore always errors, to exercise the masking policy.
type failStore struct{}

func (failStore) ReadAt(p []byte, off int64) (int, error) {
	return 0, errors.New("read failed")
}

func (failStore) WriteAt(p []byte, off int64) (int, error) {
	return 0, errors.New("write failed")
}

// fakeClock advances only when told to, and on Sleep.
type fakeClock struct {
	now    time.Time
	slept  time.Duration
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakeDisplay keeps a 2-line framebuffer so tests can assert exactly what
// the operator would see.
type fakeDisplay struct {
	lines  [2][]byte
	clears int
	// writes logs every WriteAt as "row:text", so tests can assert
	// transient renders that were cleared later.
	writes []string
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	d.blank()
	return d
}

func (d *fakeDisplay) blank() {
	for row := range d.lines {
		d.lines[row] = make([]byte, Columns)
		for i := range d.lines[row] {
			d.lines[row][i] = ' '
		}
	}
}

func (d *fakeDisplay) Clear() {
	d.blank()
	d.clears++
}

func (d *fakeDisplay) WriteAt(col, row int, text string) {
	d.writes = append(d.writes, strconv.Itoa(row)+":"+text)
	for i := 0; i < len(text) && col+i < Columns; i++ {
		d.lines[row][col+i] = text[i]
	}
}

func (d *fakeDisplay) Line(row int) string {
	return string(d.lines[row])
}

// fakeActuator records every commanded pulse.
type fakeActuator struct {
	last   uint16
	pulses []uint16
}

func (a *fakeActuator) SetPulse(us uint16) {
	a.last = us
	a.pulses = append(a.pulses, us)
}
