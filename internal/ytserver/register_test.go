package ytserver

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

type stubFetcher struct {
	frags []engine.Fragment
	err   error
	langs []string
}

func (s *stubFetcher) FetchTranscript(_ context.Context, _ engine.VideoID, langs []string) ([]engine.Fragment, error) {
	s.langs = langs
	return s.frags, s.err
}

type stubCompleter struct {
	model string
}

func (s *stubCompleter) Complete(_ context.Context, req engine.CompletionRequest) (string, error) {
	s.model = req.Model
	return "summary of " + req.Model, nil
}

func newHandlers(t *testing.T, f *stubFetcher, c *stubCompleter) *handlers {
	t.Helper()
	engine.Init(engine.DefaultConfig())
	return &handlers{summarizer: engine.NewSummarizer(f, c)}
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NotPanics(t, func() {
		RegisterTools(server, engine.NewSummarizer(&stubFetcher{}, &stubCompleter{}))
	})
}

func TestSummarizeTool(t *testing.T) {
	f := &stubFetcher{frags: []engine.Fragment{{Start: 0, Text: "hi"}}}
	c := &stubCompleter{}
	h := newHandlers(t, f, c)

	_, out, err := h.summarize(context.Background(), nil, engine.SummarizeInput{
		URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Model:    "gpt-4o",
		Language: "de,en",
	})
	require.NoError(t, err)
	assert.Equal(t, engine.SummarizeOutput{
		VideoID: "dQw4w9WgXcQ",
		Model:   "gpt-4o",
		Summary: "summary of gpt-4o",
	}, out)
	assert.Equal(t, []string{"de", "en"}, f.langs)
}

func TestSummarizeTool_DefaultModel(t *testing.T) {
	c := &stubCompleter{}
	h := newHandlers(t, &stubFetcher{}, c)

	_, out, err := h.summarize(context.Background(), nil, engine.SummarizeInput{VideoID: "dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultModel, out.Model)
	assert.Equal(t, engine.DefaultModel, c.model)
}

func TestSummarizeTool_InvalidInput(t *testing.T) {
	h := newHandlers(t, &stubFetcher{}, &stubCompleter{})

	_, _, err := h.summarize(context.Background(), nil, engine.SummarizeInput{})
	require.ErrorIs(t, err, engine.ErrInvalidInput)

	_, _, err = h.summarize(context.Background(), nil, engine.SummarizeInput{URL: "https://vimeo.com/1"})
	require.ErrorIs(t, err, engine.ErrInvalidInput)

	_, _, err = h.summarize(context.Background(), nil, engine.SummarizeInput{VideoID: "dQw4w9WgXcQ", Template: "haiku"})
	require.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestTranscriptTool(t *testing.T) {
	f := &stubFetcher{frags: []engine.Fragment{{Start: 0, Text: "a"}, {Start: 2.24, Text: "b"}}}
	h := newHandlers(t, f, &stubCompleter{})

	_, out, err := h.transcript(context.Background(), nil, engine.TranscriptInput{URL: "https://youtu.be/dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.Equal(t, engine.TranscriptOutput{
		VideoID:    "dQw4w9WgXcQ",
		Fragments:  2,
		Transcript: "0.0: a\n2.24: b",
	}, out)
	assert.Equal(t, []string{"en"}, f.langs)
}

func TestTranscriptTool_Unavailable(t *testing.T) {
	h := newHandlers(t, &stubFetcher{err: errors.New("no captions")}, &stubCompleter{})

	_, _, err := h.transcript(context.Background(), nil, engine.TranscriptInput{VideoID: "dQw4w9WgXcQ"})
	require.ErrorIs(t, err, engine.ErrTranscriptUnavailable)
}
