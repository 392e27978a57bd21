package summary

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceRE = regexp.MustCompile(`[^.!?]+[.!?]+`)

// SplitSentences splits text into whitespace-normalized sentences ending in
// '.', '!' or '?'. Trailing text without terminal punctuation is kept as a
// final sentence.
func SplitSentences(text string) []string {
	var sentences []string
	last := 0
	for _, loc := range sentenceRE.FindAllStringIndex(text, -1) {
		if s := normalizeSpace(text[loc[0]:loc[1]]); s != "" && !isPunctuationOnly(s) {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}
	if tail := normalizeSpace(text[last:]); tail != "" && !isPunctuationOnly(tail) {
		sentences = append(sentences, tail)
	}
	return sentences
}

// Chunk splits text into chunks of at most maxLength characters, breaking at
// sentence boundaries and falling back to word boundaries for sentences that
// are too long on their own. A single word longer than maxLength is emitted
// as its own oversized chunk. maxLength <= 0 disables splitting.
func Chunk(text string, maxLength int) []string {
	if maxLength <= 0 {
		if s := normalizeSpace(text); s != "" {
			return []string{s}
		}
		return nil
	}

	var (
		chunks  []string
		current string
	)
	flush := func() {
		if current != "" {
			chunks = append(chunks, current)
			current = ""
		}
	}

	for _, sentence := range SplitSentences(text) {
		if candidate := join(current, sentence); runeLen(candidate) <= maxLength {
			current = candidate
			continue
		}
		flush()
		if runeLen(sentence) <= maxLength {
			current = sentence
			continue
		}
		// Sentence alone overflows: pack its words. The last partial
		// word-chunk stays open so following sentences can join it.
		for _, word := range strings.Fields(sentence) {
			if candidate := join(current, word); current == "" || runeLen(candidate) <= maxLength {
				current = candidate
				continue
			}
			flush()
			current = word
		}
	}
	flush()
	return chunks
}

// truncateWords cuts text to at most maxLength characters at the last word
// boundary. A first word longer than maxLength is cut mid-word.
func truncateWords(text string, maxLength int) string {
	text = normalizeSpace(text)
	if maxLength <= 0 || runeLen(text) <= maxLength {
		return text
	}
	var out string
	for _, word := range strings.Fields(text) {
		candidate := join(out, word)
		if runeLen(candidate) > maxLength {
			break
		}
		out = candidate
	}
	if out == "" {
		out = string([]rune(text)[:maxLength])
	}
	return out
}

func join(current, next string) string {
	if current == "" {
		return next
	}
	return current + " " + next
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isPunctuationOnly(s string) bool {
	return strings.Trim(s, ".!? ") == ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
