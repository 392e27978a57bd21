package youtube

import (
	"errors"
	"regexp"
)

// ErrInvalidURL is returned when no supported URL shape matches.
var ErrInvalidURL = errors.New("invalid youtube url")

// SupportedURLFormats lists the URL shapes shown to users on invalid input.
var SupportedURLFormats = []string{
	"https://www.youtube.com/watch?v=VIDEO_ID",
	"https://youtu.be/VIDEO_ID",
	"https://youtube.com/shorts/VIDEO_ID",
}

// Tried in order; first match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/shorts/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
}

// ExtractVideoID returns the video identifier embedded in rawURL.
func ExtractVideoID(rawURL string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) >= 2 && m[1] != "" {
			return m[1], nil
		}
	}
	return "", ErrInvalidURL
}
