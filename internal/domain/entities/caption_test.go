package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleTranscript(t *testing.T) {
	fragments := []CaptionFragment{
		{Text: "Hello world.", Start: 0, Duration: 1.5},
		{Text: "This is a test.", Start: 1.5, Duration: 2},
	}

	assert.Equal(t, "Hello world. This is a test.", AssembleTranscript(fragments))
	assert.Equal(t, 3.5, fragments[1].End())
}

func TestAssembleTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", AssembleTranscript(nil))
}
