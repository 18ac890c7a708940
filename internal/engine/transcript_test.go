package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTranscript(t *testing.T) {
	frags := []Fragment{
		{Start: 0, Duration: 1.5, Text: "a"},
		{Start: 2.24, Duration: 3, Text: "whoa simmer down there"},
	}
	assert.Equal(t, "0.0: a\n2.24: whoa simmer down there", FormatTranscript(frags))
}

func TestFormatTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", FormatTranscript(nil))
	assert.Equal(t, "", FormatTranscript([]Fragment{}))
}

func TestFormatTranscript_KeepsOrderAndDuplicates(t *testing.T) {
	frags := []Fragment{
		{Start: 10, Text: "later"},
		{Start: 1, Text: "same"},
		{Start: 1, Text: "same"},
	}
	assert.Equal(t, "10.0: later\n1.0: same\n1.0: same", FormatTranscript(frags))
}

func TestSeconds_String(t *testing.T) {
	tests := []struct {
		in   Seconds
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{2.24, "2.24"},
		{3285.28, "3285.28"},
		{0.1, "0.1"},
		{120.5, "120.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}
