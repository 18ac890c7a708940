package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCaption(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"it&#39;s &amp; more", "it's & more"},
		{`<font color="#E5E5E5">hi</font> there`, "hi there"},
		{"&lt;i&gt;music&lt;/i&gt;", "music"},
		{"  spaced  ", "  spaced  "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanCaption(tt.in))
	}
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 10))
	got := TruncateForLog("0.0: a very long transcript line", 10)
	assert.LessOrEqual(t, len([]rune(got)), 13)
	assert.NotEqual(t, "0.0: a very long transcript line", got)
}
