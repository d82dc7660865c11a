package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	titleWords    = 5
	titleEllipsis = "..."
	// UntitledTitle is used when the source has no words at all.
	UntitledTitle = "Untitled"
)

// Segment splits text into sentences after '.', '!' or '?' when followed by
// whitespace. Pieces are trimmed and empty pieces dropped. Abbreviations
// ("Dr. Smith") and quotes are not special-cased.
func Segment(text string) []string {
	sentences := []string{}
	start := 0
	prevTerminal := false

	for i, r := range text {
		if prevTerminal && unicode.IsSpace(r) {
			if piece := strings.TrimSpace(text[start:i]); piece != "" {
				sentences = append(sentences, piece)
			}
			start = i
		}
		prevTerminal = r == '.' || r == '!' || r == '?'
	}
	if piece := strings.TrimSpace(text[start:]); piece != "" {
		sentences = append(sentences, piece)
	}
	return sentences
}

// DeriveTitle returns the first five whitespace-delimited words of text,
// with "..." appended when words were dropped.
func DeriveTitle(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return UntitledTitle
	}
	if len(words) <= titleWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:titleWords], " ") + titleEllipsis
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// RuneLen is the length used for user-facing text limits.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
