package servocal

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DefaultChannels is the number of servo channels in the reference deployment.
const DefaultChannels = 18

// DefaultBaudRate is the serial speed used by the firmware's export stream.
const DefaultBaudRate = 115200

// Export stream framing. The firmware emits the header, one record per
// channel, then the trailer. Lines are CRLF-terminated on the wire.
const (
	ExportHeader  = "Servo,Min,Max"
	ExportTrailer = "Export complete."
)

// Bounds holds the calibrated pulse-width limits for one servo channel,
// in microseconds.
type Bounds struct {
	Min uint16 `json:"min"`
	Max uint16 `json:"max"`
}

// Table is the full calibration table, indexed by 0-based channel.
type Table []Bounds

// Calibration is a captured table plus metadata, as stored by a
// calibration hub.
type Calibration struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	CapturedAt time.Time `json:"captured_at"`
	Servos     Table     `json:"servos"`
}

// FormatRecord renders one export line. Channels are 1-based on the wire.
func FormatRecord(channel int, b Bounds) string {
	return strconv.Itoa(channel) + "," +
		strconv.FormatUint(uint64(b.Min), 10) + "," +
		strconv.FormatUint(uint64(b.Max), 10)
}

// ParseRecord parses one export line into its 1-based channel number and
// bounds.
func ParseRecord(line string) (int, Bounds, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return 0, Bounds{}, errors.New("expected 3 fields")
	}

	channel, err := strconv.Atoi(parts[0])
	if err != nil || channel < 1 {
		return 0, Bounds{}, errors.New("invalid channel: " + parts[0])
	}

	min, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return 0, Bounds{}, errors.New("invalid min: " + parts[1])
	}

	max, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return 0, Bounds{}, errors.New("invalid max: " + parts[2])
	}

	return channel, Bounds{Min: uint16(min), Max: uint16(max)}, nil
}

// String renders the table as CSV with the export header, suitable for
// saving to a file.
func (t Table) String() string {
	var sb strings.Builder
	sb.WriteString(ExportHeader)
	sb.WriteByte('\n')
	for i, b := range t {
		sb.WriteString(FormatRecord(i+1, b))
		sb.WriteByte('\n')
	}
	return sb.String()
}
