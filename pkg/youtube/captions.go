package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/yt-summarizer/internal/domain/entities"
	"github.com/johnquangdev/yt-summarizer/pkg/config"
)

var (
	// ErrNoCaptions is returned when the video has no caption track in the
	// requested language.
	ErrNoCaptions = errors.New("no captions available")
	// ErrTooLarge is returned when a response exceeds its read limit.
	ErrTooLarge = errors.New("response too large")
)

const (
	defaultBaseURL    = "https://www.youtube.com"
	browserUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	captionTracksKey  = `"captionTracks":`
	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 2 * 1024 * 1024
)

var markupRE = regexp.MustCompile(`<[^>]*>`)

// CaptionClient fetches closed captions by scraping the watch page for
// caption tracks and downloading the timedtext XML of the chosen track.
type CaptionClient struct {
	baseURL string
	client  *http.Client
}

// NewCaptionClient creates a caption client from config. Pass nil to use defaults.
func NewCaptionClient(cfg *config.YouTubeConfig) *CaptionClient {
	base := defaultBaseURL
	timeout := 30 * time.Second
	if cfg != nil {
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	return &CaptionClient{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	VssID        string `json:"vssId"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Lines []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",innerxml"`
	} `xml:"text"`
}

// FetchCaptions returns the caption fragments of videoID in lang, in order.
func (c *CaptionClient) FetchCaptions(ctx context.Context, videoID, lang string) ([]entities.CaptionFragment, error) {
	page, err := c.get(ctx, c.baseURL+"/watch?v="+url.QueryEscape(videoID), maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return nil, fmt.Errorf("%w: could not find captions for video %s", ErrNoCaptions, videoID)
	}

	track, ok := pickTrack(tracks, lang)
	if !ok {
		return nil, fmt.Errorf("%w: could not find %s captions for %s", ErrNoCaptions, lang, videoID)
	}

	body, err := c.get(ctx, track.BaseURL, maxTimedTextBytes)
	if errors.Is(err, ErrTooLarge) {
		return nil, fmt.Errorf("caption track too large: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("timedtext: %w", err)
	}
	return parseTimedText(body)
}

func (c *CaptionClient) get(ctx context.Context, target string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("youtube returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrTooLarge, limit, resp.Request.URL.Path)
	}
	return body, nil
}

// parseCaptionTracks decodes the captionTracks array embedded in the
// watch page's player response.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	s := string(page)
	idx := strings.Index(s, captionTracksKey)
	if idx < 0 {
		return nil, errors.New("captionTracks not found in watch page")
	}
	var tracks []captionTrack
	// Decoder stops after the first value, the rest of the page is ignored.
	if err := json.NewDecoder(strings.NewReader(s[idx+len(captionTracksKey):])).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("decode captionTracks: %w", err)
	}
	if len(tracks) == 0 {
		return nil, errors.New("empty captionTracks")
	}
	return tracks, nil
}

// needsPoToken reports whether a track URL only works in a browser.
// Tracks with exp=xpe answer server-side requests with an empty body.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "exp=xpe")
}

// pickTrack prefers a manual track in lang, then the auto-generated one,
// then any regional variant (en-GB, en-US). Tracks needing a PO token
// are skipped.
func pickTrack(tracks []captionTrack, lang string) (captionTrack, bool) {
	matchers := []func(captionTrack) bool{
		func(t captionTrack) bool { return t.VssID == "."+lang || (t.LanguageCode == lang && t.Kind != "asr") },
		func(t captionTrack) bool { return t.VssID == "a."+lang || t.LanguageCode == lang },
		func(t captionTrack) bool { return strings.HasPrefix(t.LanguageCode, lang+"-") },
	}
	for _, match := range matchers {
		for _, t := range tracks {
			if t.BaseURL != "" && !needsPoToken(t.BaseURL) && match(t) {
				return t, true
			}
		}
	}
	return captionTrack{}, false
}

// parseTimedText returns no fragments for a blank body.
func parseTimedText(body []byte) ([]entities.CaptionFragment, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	fragments := make([]entities.CaptionFragment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := cleanCaptionText(line.Text)
		if text == "" {
			continue
		}
		start, _ := strconv.ParseFloat(line.Start, 64)
		dur, _ := strconv.ParseFloat(line.Dur, 64)
		fragments = append(fragments, entities.CaptionFragment{
			Text:     text,
			Start:    start,
			Duration: dur,
		})
	}
	return fragments, nil
}

// cleanCaptionText unescapes the (often double-escaped) caption text and
// strips inline markup such as <font> tags.
func cleanCaptionText(raw string) string {
	text := html.UnescapeString(html.UnescapeString(raw))
	text = markupRE.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
