package timecode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   float64
	}{
		{"srt zero", "00:00:00,000", FormatSRT, 0},
		{"srt simple", "00:00:01,000", FormatSRT, 1},
		{"srt millis", "00:00:07,500", FormatSRT, 7.5},
		{"srt hours", "01:02:03,456", FormatSRT, 3723.456},
		{"vtt simple", "00:00:01.000", FormatVTT, 1},
		{"vtt millis", "00:01:30.250", FormatVTT, 90.25},
		{"short form", "1:05", FormatVTT, 65},
		{"short form millis", "2:30.500", FormatVTT, 150.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.format)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0005)
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"empty", "", FormatSRT},
		{"garbage", "not a time", FormatSRT},
		{"missing millis separator", "00:00:01:000", FormatSRT},
		{"wrong separator for srt", "00:00:01.000", FormatSRT},
		{"wrong separator for vtt", "00:00:01,000", FormatVTT},
		{"minutes out of range", "00:61:00,000", FormatSRT},
		{"seconds out of range", "00:00:75,000", FormatSRT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse), "expected ErrParse, got %v", err)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		format  Format
		want    string
	}{
		{0, FormatSRT, "00:00:00,000"},
		{1, FormatSRT, "00:00:01,000"},
		{7.5, FormatSRT, "00:00:07,500"},
		{3723.456, FormatSRT, "01:02:03,456"},
		{90.25, FormatVTT, "00:01:30.250"},
		{-3, FormatSRT, "00:00:00,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.seconds, tt.format))
	}
}

func TestRoundTripExactToMillisecond(t *testing.T) {
	values := []float64{0, 0.001, 1.5, 59.999, 61.25, 3599.5, 3600.001, 7245.678}

	for _, format := range []Format{FormatSRT, FormatVTT} {
		for _, v := range values {
			formatted := FormatTimestamp(v, format)
			parsed, err := Parse(formatted, format)
			require.NoError(t, err)
			assert.InDelta(t, v, parsed, 0.0005, "round trip of %v via %s", v, format)
		}
	}
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "0:00", FormatShort(0))
	assert.Equal(t, "0:59", FormatShort(59.9))
	assert.Equal(t, "1:05", FormatShort(65.2))
	assert.Equal(t, "12:03", FormatShort(723))
	assert.Equal(t, "0:00", FormatShort(-5))
}
