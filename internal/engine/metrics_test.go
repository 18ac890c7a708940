package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMetrics(t *testing.T) {
	out := FormatMetrics()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(metricKeys))
	for i, k := range metricKeys {
		assert.True(t, strings.HasPrefix(lines[i], k+" "), "line %d = %q", i, lines[i])
	}
}

func TestTrackOperation(t *testing.T) {
	want := errors.New("boom")
	err := TrackOperation(context.Background(), "op", func(context.Context) error { return want })
	assert.ErrorIs(t, err, want)

	ran := false
	require.NoError(t, TrackOperation(context.Background(), "op", func(context.Context) error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}
