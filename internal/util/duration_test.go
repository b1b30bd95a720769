package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := map[string]int64{
		"00:10:00":  600,
		"02:00:00":  7200,
		"1:2:3":     3723,
		"100:00:01": 360001,
		" 00:00:30": 30,
		"00:90:00":  5400,
		"10:00":     0,
		"":          0,
		"a:b:c":     0,
		"1:-1:0":    0,
		"1:2:3:4":   0,
		"1.5:0:0":   0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseClock(in), "ParseClock(%q)", in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "00:10:00", FormatClock(600))
	assert.Equal(t, "01:01:01", FormatClock(3661))
	assert.Equal(t, "123:00:05", FormatClock(123*3600+5))
	assert.Equal(t, "00:00:00", FormatClock(-10))
}

func TestClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00:01", "12:34:56", "99:59:59"} {
		assert.Equal(t, s, FormatClock(ParseClock(s)))
	}
}
