package engine

import (
	"fmt"
	"strings"
)

// Template selects the instruction set used to summarize a transcript.
type Template string

const (
	// TemplateSummary asks for a structured markdown summary with deep links.
	TemplateSummary Template = "summary"
	// TemplateTimeline asks for a terse bulleted topic timeline.
	TemplateTimeline Template = "timeline"
)

// ParseTemplate normalises a template name. Empty selects TemplateSummary.
func ParseTemplate(s string) (Template, error) {
	switch t := Template(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TemplateSummary, nil
	case TemplateSummary, TemplateTimeline:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown template %q (want summary or timeline)", ErrInvalidInput, s)
	}
}

// summarySystemPrompt frames the transcript for a structured summary.
// Args: video ID (used twice), formatted transcript.
const summarySystemPrompt = `You are a video transcript summarizer. The video ID is %[1]s.
Below is the transcript of the video. Every line starts with the time in seconds at which it is spoken.
---
%[2]s
---
Write a structured markdown summary of this video:
- Open with a "## Overview" section: one short paragraph on what the video is about.
- Split the rest into "##" sections that follow the order of the video.
- Inside each section, list the topics covered as bullets of one or two sentences.
- End every bullet with a deep link to the moment the topic starts, built from the timestamps above in the standard YouTube format: [mm:ss](https://www.youtube.com/watch?v=%[1]s&t=<seconds>s), where <seconds> is the whole number of seconds.
- Close with a "## Key takeaways" section of three to five bullets.
Use only information found in the transcript.`

const summaryUserPrompt = `Summarize the video transcript above.`

// timelineSystemPrompt frames the transcript for the topic timeline.
// Args: video ID (used twice), formatted transcript.
const timelineSystemPrompt = `You are a video transcript summarizer. The video ID is %[1]s.
Here is the video transcript which includes the timestamp in seconds (pay special attention to timestamps because you'll be asked about them later).
---
%[2]s
---
If you are asked for a URL to a point in the video, use the standard YouTube URL format with the video ID and the timestamp in seconds, e.g., https://www.youtube.com/watch?v=%[1]s&t=1234s.`

const timelineUserPrompt = `Create a quick summary of the video transcript above as a bulleted list of topics covered in time order. For each bullet, include the following:
- the topic
- a very terse summary of the topic (one sentence)
- the timestamp (seconds, just like above) of the first occurrence of that topic along with the line of transcript that introduces the topic
- the timestamp (seconds) of the most important part of the topic along with the line of transcript that introduces the topic
This summary serves as a quick reference for later, so keep it short.`

// BuildMessages returns the system and user messages for one summarize call.
// The transcript is embedded verbatim.
func BuildMessages(tpl Template, id VideoID, transcript string) ([]Message, error) {
	var system, user string
	switch tpl {
	case TemplateSummary, "":
		system, user = summarySystemPrompt, summaryUserPrompt
	case TemplateTimeline:
		system, user = timelineSystemPrompt, timelineUserPrompt
	default:
		return nil, fmt.Errorf("%w: unknown template %q", ErrInvalidInput, tpl)
	}
	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(system, id, transcript)},
		{Role: RoleUser, Content: user},
	}, nil
}
