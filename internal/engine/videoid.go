package engine

import (
	"fmt"
	"regexp"
)

// videoIDRE matches the first 11-char token after "v=" or "youtu.be/".
var videoIDRE = regexp.MustCompile(`(?:v=|youtu\.be/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID pulls the video ID out of a YouTube URL.
func ExtractVideoID(rawURL string) (VideoID, error) {
	m := videoIDRE.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", fmt.Errorf("%w: could not extract video ID from URL %q", ErrInvalidInput, rawURL)
	}
	return VideoID(m[1]), nil
}

// ResolveVideoID returns arg verbatim when raw is set; otherwise arg is
// treated as a URL and the ID is extracted from it.
func ResolveVideoID(arg string, raw bool) (VideoID, error) {
	if raw {
		return VideoID(arg), nil
	}
	return ExtractVideoID(arg)
}
