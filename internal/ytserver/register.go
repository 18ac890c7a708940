// Package ytserver exposes the summarizer as MCP tools.
package ytserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/anatolykoptev/go_ytsum/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 2

// RegisterTools registers youtube_summarize and youtube_transcript on server.
func RegisterTools(server *mcp.Server, s *engine.Summarizer) {
	h := &handlers{summarizer: s}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_summarize",
		Description: "Summarize a YouTube video from its captions. Returns a markdown summary whose bullets deep-link to the moment each topic is discussed (watch?v=<id>&t=<seconds>s). Template 'summary' gives sectioned markdown, 'timeline' a terse topic list.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, h.summarize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Fetch the timestamped transcript of a YouTube video. One line per caption: '<start seconds>: <text>'.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, h.transcript)
}

type handlers struct {
	summarizer *engine.Summarizer
}

func (h *handlers) summarize(ctx context.Context, _ *mcp.CallToolRequest, input engine.SummarizeInput) (*mcp.CallToolResult, engine.SummarizeOutput, error) {
	id, err := toolutil.ResolveInput(input.URL, input.VideoID)
	if err != nil {
		return nil, engine.SummarizeOutput{}, err
	}
	o := toolutil.Overrides{Template: input.Template, Language: input.Language}
	if input.Model != "" {
		o.Model = &input.Model
	}
	req, err := toolutil.NewRequest(*engine.Cfg, id, o)
	if err != nil {
		return nil, engine.SummarizeOutput{}, err
	}

	summary, err := h.summarizer.Summarize(ctx, req)
	if err != nil {
		slog.Warn("youtube_summarize failed", slog.String("video", string(id)), slog.Any("error", err))
		return nil, engine.SummarizeOutput{}, err
	}
	return nil, engine.SummarizeOutput{
		VideoID: string(id),
		Model:   req.Model,
		Summary: summary,
	}, nil
}

func (h *handlers) transcript(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
	id, err := toolutil.ResolveInput(input.URL, input.VideoID)
	if err != nil {
		return nil, engine.TranscriptOutput{}, err
	}
	langs := toolutil.SplitLangs(input.Language, engine.Cfg.Languages)

	out, err := h.summarizer.Transcript(ctx, id, langs)
	if err != nil {
		slog.Warn("youtube_transcript failed", slog.String("video", string(id)), slog.Any("error", err))
		return nil, engine.TranscriptOutput{}, err
	}
	return nil, out, nil
}
