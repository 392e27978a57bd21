package entities

import "strings"

// CaptionFragment is one timed snippet of a video's closed-caption track
type CaptionFragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // offset in seconds
	Duration float64 `json:"duration"` // in seconds
}

// End returns the offset at which the fragment stops being displayed
func (c CaptionFragment) End() float64 {
	return c.Start + c.Duration
}

// AssembleTranscript joins the fragment texts with single spaces, in order
func AssembleTranscript(fragments []CaptionFragment) string {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}
	return strings.Join(texts, " ")
}
