package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// YouTube Innertube API: low-level constants, types, and HTTP primitives.
// All higher-level logic lives in youtube_transcript.go.

const (
	ytWatchURL       = "https://www.youtube.com/watch?v=%s"
	ytInnertubeURL   = "https://www.youtube.com/youtubei/v1/player"
	ytAndroidVersion = "20.10.38"
	ytAndroidUA      = "com.google.android.youtube/" + ytAndroidVersion + " (Linux; U; Android 11) gzip"

	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 4 * 1024 * 1024
	maxPlayerBytes    = 3 * 1024 * 1024
)

// --- ANDROID client types (/player endpoint) ---

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

// innertubePlayerResp is shared by the /player response and the
// ytInitialPlayerResponse blob embedded in the watch page.
type innertubePlayerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// --- Timedtext XML types ---

// <text start="3285.28" dur="4.88">surprised you with how they comport</text>
type ytTimedText struct {
	Lines []ytLine `xml:"text"`
}

type ytLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

// captionTracks returns the caption tracks of a player response, or an error
// carrying the playability reason when there are none.
func (p *innertubePlayerResp) captionTracks() ([]captionTrack, error) {
	if p.Captions == nil {
		if p.PlayabilityStatus != nil && p.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", p.PlayabilityStatus.Reason)
		}
		return nil, fmt.Errorf("no captions in player response")
	}
	tracks := p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no caption tracks")
	}
	return tracks, nil
}

// postPlayerANDROID POSTs a /player request with ANDROID client headers.
func (y *YouTube) postPlayerANDROID(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, y.PlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	body, err := y.do(req, maxPlayerBytes)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	var playerResp innertubePlayerResp
	if err := json.Unmarshal(body, &playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &playerResp, nil
}

// fetchTimedText fetches and parses a YouTube timedtext XML caption URL.
func (y *YouTube) fetchTimedText(ctx context.Context, baseURL string) ([]engine.Fragment, error) {
	// srv3 is a different XML dialect; the default format carries start/dur attributes.
	captionURL := strings.Replace(baseURL, "&fmt=srv3", "", 1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, captionURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgent)

	body, err := y.do(req, maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	return parseTimedText(body)
}

// parseTimedText decodes timedtext XML into fragments, in document order.
func parseTimedText(body []byte) ([]engine.Fragment, error) {
	var tt ytTimedText
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.Entity = xml.HTMLEntity
	if err := dec.Decode(&tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	frags := make([]engine.Fragment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		// Only elements without text are dropped; whitespace captions are kept.
		if line.Text == "" {
			continue
		}
		frags = append(frags, engine.Fragment{
			Start:    engine.Seconds(line.Start),
			Duration: engine.Seconds(line.Duration),
			Text:     engine.CleanCaption(line.Text),
		})
	}
	return frags, nil
}

// do sends req and returns at most limit bytes of a 200 response body.
func (y *YouTube) do(req *http.Request, limit int64) ([]byte, error) {
	resp, err := y.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
