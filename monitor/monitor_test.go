package monitor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servocal"
)

func dump(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func TestCaptureFullDump(t *testing.T) {
	in := dump(
		"Servo,Min,Max",
		"1,1000,2000",
		"2,1200,1800",
		"3,500,2500",
		"Export complete.",
	)

	table, err := Capture(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, servocal.Table{
		{Min: 1000, Max: 2000},
		{Min: 1200, Max: 1800},
		{Min: 500, Max: 2500},
	}, table)
}

func TestCaptureIgnoresBootNoise(t *testing.T) {
	in := dump(
		"booting...",
		"garbage 123",
		"Servo,Min,Max",
		"1,1000,2000",
		"Export complete.",
	)

	table, err := Capture(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestCaptureAcceptsBareLF(t *testing.T) {
	in := "Servo,Min,Max\n1,1000,2000\nExport complete.\n"

	table, err := Capture(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestCaptureMissingTrailer(t *testing.T) {
	in := dump(
		"Servo,Min,Max",
		"1,1000,2000",
	)

	_, err := Capture(strings.NewReader(in))
	assert.ErrorContains(t, err, "completion marker")
}

func TestCaptureBadRecord(t *testing.T) {
	in := dump(
		"Servo,Min,Max",
		"1,1000",
		"Export complete.",
	)

	_, err := Capture(strings.NewReader(in))
	assert.ErrorContains(t, err, "bad record")
}

func TestCaptureOutOfOrderRecord(t *testing.T) {
	in := dump(
		"Servo,Min,Max",
		"1,1000,2000",
		"3,1000,2000",
		"Export complete.",
	)

	_, err := Capture(strings.NewReader(in))
	assert.ErrorContains(t, err, "out-of-order")
}
