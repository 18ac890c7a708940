package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	stealth "github.com/anatolykoptev/go-stealth"
	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// YouTube transcript fetching.
// Primary:  watch page ytInitialPlayerResponse → captionTracks → timedtext XML
// Fallback: ANDROID Innertube /player → captionTracks → timedtext XML

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the given language preferences.
// Skips tracks that require PoToken; those only work in a browser.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	// 1. Manual track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	// 2. Auto-generated track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	// 3. Any English track
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// fetchViaWatchPage scrapes the watch page HTML and follows the caption track
// URL found in ytInitialPlayerResponse.
func (y *YouTube) fetchViaWatchPage(ctx context.Context, videoID string, langs []string) ([]engine.Fragment, error) {
	body, err := y.watchPage(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	jsonData, err := playerResponseJSON(body)
	if err != nil {
		return nil, err
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return y.fetchBestTrack(ctx, &playerResp, langs)
}

// playerResponseJSON finds the <script> that assigns ytInitialPlayerResponse
// and returns the JSON object literal it assigns.
func playerResponseJSON(page []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	var found []byte
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "script" && n.FirstChild != nil {
			text := n.FirstChild.Data
			if idx := strings.Index(text, ytInitialPlayerResponseMarker); idx >= 0 {
				found = extractJSON([]byte(text[idx+len(ytInitialPlayerResponseMarker):]))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if found == nil {
		if bytes.Contains(page, []byte(`class="g-recaptcha"`)) {
			return nil, errors.New("watch page: rate limited by YouTube (captcha)")
		}
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	return found, nil
}

// watchPage loads the HTML of the watch page, through the browser client
// when one is configured.
func (y *YouTube) watchPage(ctx context.Context, videoID string) ([]byte, error) {
	pageURL := fmt.Sprintf(y.WatchURL, videoID)
	headers := make(map[string]string)
	for k, v := range stealth.ChromeHeaders() {
		headers[http.CanonicalHeaderKey(k)] = v
	}
	headers["User-Agent"] = stealth.RandomUserAgent()
	headers["Accept-Language"] = "en-US,en;q=0.9"

	if y.Browser != nil {
		body, status, err := y.Browser.Do(ctx, http.MethodGet, pageURL, headers, nil, maxWatchPageBytes)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d", status)
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// net/http only decompresses transparently when it set Accept-Encoding itself.
	req.Header.Del("Accept-Encoding")
	return y.do(req, maxWatchPageBytes)
}

// fetchViaPlayer uses the ANDROID Innertube /player endpoint.
func (y *YouTube) fetchViaPlayer(ctx context.Context, videoID string, langs []string) ([]engine.Fragment, error) {
	playerResp, err := y.postPlayerANDROID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return y.fetchBestTrack(ctx, playerResp, langs)
}

func (y *YouTube) fetchBestTrack(ctx context.Context, p *innertubePlayerResp, langs []string) ([]engine.Fragment, error) {
	tracks, err := p.captionTracks()
	if err != nil {
		return nil, err
	}
	track, ok := pickBestTrack(tracks, langs)
	if !ok {
		return nil, errors.New("all caption tracks require PoToken")
	}
	slog.Debug("youtube: caption track selected",
		slog.String("lang", track.LanguageCode), slog.String("kind", track.Kind))
	return y.fetchTimedText(ctx, track.BaseURL)
}

// FetchTranscript returns the caption fragments of a video in playback order.
// The watch page is tried first; the ANDROID player endpoint is the fallback.
func (y *YouTube) FetchTranscript(ctx context.Context, id engine.VideoID, langs []string) ([]engine.Fragment, error) {
	videoID := string(id)

	frags, scrapeErr := y.fetchViaWatchPage(ctx, videoID, langs)
	if scrapeErr == nil {
		return frags, nil
	}
	if ctx.Err() != nil {
		return nil, scrapeErr
	}
	slog.Warn("youtube: page scrape failed, trying player",
		slog.String("id", videoID), slog.Any("err", scrapeErr))

	frags, playerErr := y.fetchViaPlayer(ctx, videoID, langs)
	if playerErr == nil {
		return frags, nil
	}
	return nil, errors.Join(scrapeErr, playerErr)
}
