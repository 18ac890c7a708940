package toolutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

func TestSplitLangs(t *testing.T) {
	fallback := []string{"en"}
	assert.Equal(t, []string{"de", "en"}, SplitLangs("de, en", fallback))
	assert.Equal(t, []string{"fr"}, SplitLangs(" fr ,, ", fallback))
	assert.Equal(t, fallback, SplitLangs("", fallback))
	assert.Equal(t, fallback, SplitLangs(" , ", fallback))
}

func TestResolveInput(t *testing.T) {
	id, err := ResolveInput("https://youtu.be/dQw4w9WgXcQ", "ignored")
	require.NoError(t, err)
	assert.Equal(t, engine.VideoID("dQw4w9WgXcQ"), id)

	id, err = ResolveInput("", " dQw4w9WgXcQ ")
	require.NoError(t, err)
	assert.Equal(t, engine.VideoID("dQw4w9WgXcQ"), id)

	_, err = ResolveInput("https://example.com", "dQw4w9WgXcQ")
	require.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = ResolveInput("", "")
	require.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestNewRequest(t *testing.T) {
	c := engine.DefaultConfig()
	c.Languages = []string{"de"}

	req, err := NewRequest(c, "dQw4w9WgXcQ", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, engine.SummarizeRequest{
		VideoID:     "dQw4w9WgXcQ",
		Model:       engine.DefaultModel,
		Template:    engine.TemplateSummary,
		Languages:   []string{"de"},
		MaxTokens:   engine.DefaultMaxTokens,
		Temperature: engine.DefaultTemperature,
	}, req)

	model := "gpt-4o"
	req, err = NewRequest(c, "dQw4w9WgXcQ", Overrides{Model: &model, Template: "timeline", Language: "en,fr"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, engine.TemplateTimeline, req.Template)
	assert.Equal(t, []string{"en", "fr"}, req.Languages)

	_, err = NewRequest(c, "dQw4w9WgXcQ", Overrides{Template: "haiku"})
	require.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestNewRequest_ModelVerbatim(t *testing.T) {
	c := engine.DefaultConfig()
	for _, model := range []string{" gpt-4o ", ""} {
		req, err := NewRequest(c, "dQw4w9WgXcQ", Overrides{Model: &model})
		require.NoError(t, err)
		assert.Equal(t, model, req.Model)
	}
}
