package engine

import (
	"strconv"
	"strings"
)

// VideoID is the 11-character YouTube video identifier.
type VideoID string

// Seconds is a caption offset as reported by the transcript source.
type Seconds float64

// String renders s the way the caption source reports it: the shortest
// decimal that round-trips, always with a fractional part ("0.0", "2.24").
func (s Seconds) String() string {
	out := strconv.FormatFloat(float64(s), 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// Fragment is one caption unit.
type Fragment struct {
	Start    Seconds `json:"start"`
	Duration Seconds `json:"duration"`
	Text     string  `json:"text"`
}

// Role tags a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged chat message sent to the completion service.
type Message struct {
	Role    Role
	Content string
}

// --- MCP tool types ---

type SummarizeInput struct {
	URL      string `json:"url,omitempty" jsonschema:"YouTube video URL (youtube.com/watch?v=... or youtu.be/...)"`
	VideoID  string `json:"video_id,omitempty" jsonschema:"Bare 11-character video ID, used verbatim when url is empty"`
	Model    string `json:"model,omitempty" jsonschema:"Chat model name (default: gpt-4.1-mini)"`
	Template string `json:"template,omitempty" jsonschema:"Prompt template: summary (structured markdown with deep links) or timeline (terse topic list)"`
	Language string `json:"language,omitempty" jsonschema:"Comma-separated transcript language preference (default: en)"`
}

type SummarizeOutput struct {
	VideoID string `json:"video_id"`
	Model   string `json:"model"`
	Summary string `json:"summary"`
}

type TranscriptInput struct {
	URL      string `json:"url,omitempty" jsonschema:"YouTube video URL (youtube.com/watch?v=... or youtu.be/...)"`
	VideoID  string `json:"video_id,omitempty" jsonschema:"Bare 11-character video ID, used verbatim when url is empty"`
	Language string `json:"language,omitempty" jsonschema:"Comma-separated transcript language preference (default: en)"`
}

type TranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Fragments  int    `json:"fragments"`
	Transcript string `json:"transcript"`
}
