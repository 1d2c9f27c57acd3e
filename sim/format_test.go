package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{95.123, "1:35.123"},
		{59.5, "59.500s"},
		{125.0, "2:05.000"},
		{-1, "N/A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLapTime(tt.seconds))
	}
}

func TestFormatSegmentTime(t *testing.T) {
	assert.Equal(t, "28.456s", FormatSegmentTime(28.456))
	assert.Equal(t, "N/A", FormatSegmentTime(-0.5))
}
