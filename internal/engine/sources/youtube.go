package sources

// YouTube implementation is split across two files by responsibility:
//   youtube_innertube.go  - Innertube/timedtext types, constants, and HTTP primitives
//   youtube_transcript.go - transcript fetching (watch page scrape + ANDROID player fallback)

import (
	"context"
	"io"
	"net/http"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// PageFetcher performs a browser-fingerprinted request.
// *engine.BrowserClient implements it.
type PageFetcher interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body io.Reader, limit int64) ([]byte, int, error)
}

// YouTube fetches timestamped captions for a video. It implements
// engine.TranscriptFetcher.
type YouTube struct {
	HTTPClient *http.Client
	// Browser, when set, loads the watch page. nil = HTTPClient.
	Browser PageFetcher
	// WatchURL is a fmt pattern taking the video ID.
	WatchURL string
	// PlayerURL is the ANDROID Innertube /player endpoint.
	PlayerURL string
}

var (
	_ engine.TranscriptFetcher = (*YouTube)(nil)
	_ PageFetcher              = (*engine.BrowserClient)(nil)
)

// NewYouTube returns a fetcher that talks to youtube.com with hc.
func NewYouTube(hc *http.Client) *YouTube {
	if hc == nil {
		hc = &http.Client{Timeout: engine.DefaultFetchTimeout}
	}
	return &YouTube{
		HTTPClient: hc,
		WatchURL:   ytWatchURL,
		PlayerURL:  ytInnertubeURL,
	}
}
