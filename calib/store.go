package calib

import "encoding/binary"

// Pulse-width limits and fallback bounds, in microseconds.
const (
	PulseMin uint16 = 500
	PulseMax uint16 = 2500

	DefaultMin uint16 = 1000
	DefaultMax uint16 = 2000
)

// Storage layout: 4 bytes per channel, min slot at +0, max slot at +2,
// 2-byte little-endian values. Channel-major and contiguous, so all slot
// addresses are pairwise distinct.
const (
	slotSize      = 2
	channelStride = 4
)

// BoundKind distinguishes a channel's min slot from its max slot.
type BoundKind uint8

const (
	BoundMin BoundKind = iota
	BoundMax
)

func (k BoundKind) String() string {
	if k == BoundMax {
		return "Max"
	}
	return "Min"
}

// Slot is a tagged reference to one bound's storage location. The raw
// address is derived only at the storage boundary.
type Slot struct {
	Channel int
	Kind    BoundKind
}

// Address returns the slot's byte offset in storage.
func (s Slot) Address() uint16 {
	addr := uint16(s.Channel) * channelStride
	if s.Kind == BoundMax {
		addr += slotSize
	}
	return addr
}

// kindOfAddress recovers the bound kind from the address alone, via its
// position within the channel stride.
func kindOfAddress(addr uint16) BoundKind {
	if addr%channelStride < slotSize {
		return BoundMin
	}
	return BoundMax
}

// Validate returns v unchanged when it is a plausible pulse width, or the
// default for the addressed slot's bound kind otherwise. Uninitialized or
// corrupted storage decodes out of range and lands here.
func Validate(addr uint16, v uint16) uint16 {
	if v >= PulseMin && v <= PulseMax {
		return v
	}
	if kindOfAddress(addr) == BoundMin {
		return DefaultMin
	}
	return DefaultMax
}

// ByteStore is the non-volatile storage capability: byte access at an
// offset, persistent across power cycles. Writes are synchronous.
type ByteStore interface {
	ReadAt(p []byte, off int64) (n int, err error)
	WriteAt(p []byte, off int64) (n int, err error)
}

// Store encodes and decodes channel bounds over a ByteStore.
type Store struct {
	mem      ByteStore
	channels int
}

// NewStore creates a Store for the given channel count.
func NewStore(mem ByteStore, channels int) *Store {
	return &Store{mem: mem, channels: channels}
}

// Channels returns the configured channel count.
func (s *Store) Channels() int {
	return s.channels
}

// Save writes the value to the slot. Values come from the live reading and
// are already in range, so no validation happens on the write path.
func (s *Store) Save(slot Slot, value uint16) error {
	var buf [slotSize]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	_, err := s.mem.WriteAt(buf[:], int64(slot.Address()))
	return err
}

// Load reads the slot and validates the decoded value, substituting the
// bound-kind default when it is implausible. Read failures are masked the
// same way.
func (s *Store) Load(slot Slot) uint16 {
	addr := slot.Address()

	var buf [slotSize]byte
	if _, err := s.mem.ReadAt(buf[:], int64(addr)); err != nil {
		return Validate(addr, 0)
	}
	return Validate(addr, binary.LittleEndian.Uint16(buf[:]))
}

// Bounds loads both bounds for a channel.
func (s *Store) Bounds(channel int) (min, max uint16) {
	min = s.Load(Slot{Channel: channel, Kind: BoundMin})
	max = s.Load(Slot{Channel: channel, Kind: BoundMax})
	return min, max
}
