// Package toolutil provides helpers shared by the CLI commands and the MCP tools.
package toolutil

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// SplitLangs parses a comma-separated language list ("de, en").
// Blank input or a list of blanks returns fallback.
func SplitLangs(s string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// ResolveInput picks the video ID from a tool input: a non-empty url is
// parsed, otherwise videoID is used verbatim.
func ResolveInput(url, videoID string) (engine.VideoID, error) {
	switch {
	case strings.TrimSpace(url) != "":
		return engine.ExtractVideoID(url)
	case strings.TrimSpace(videoID) != "":
		return engine.VideoID(strings.TrimSpace(videoID)), nil
	default:
		return "", fmt.Errorf("%w: url or video_id is required", engine.ErrInvalidInput)
	}
}

// Overrides carries per-call settings. A nil Model or an empty Template or
// Language keeps the configured value; a non-nil Model is used verbatim.
type Overrides struct {
	Model    *string
	Template string
	Language string
}

// NewRequest builds a summarize request for id from c with o applied.
func NewRequest(c engine.Config, id engine.VideoID, o Overrides) (engine.SummarizeRequest, error) {
	req := engine.SummarizeRequest{
		VideoID:     id,
		Model:       c.LLMModel,
		Template:    c.Template,
		Languages:   c.Languages,
		MaxTokens:   c.LLMMaxTokens,
		Temperature: c.LLMTemperature,
	}
	if o.Model != nil {
		req.Model = *o.Model
	}
	if o.Template != "" {
		tpl, err := engine.ParseTemplate(o.Template)
		if err != nil {
			return engine.SummarizeRequest{}, err
		}
		req.Template = tpl
	}
	req.Languages = SplitLangs(o.Language, req.Languages)
	return req, nil
}
