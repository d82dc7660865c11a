package sanitizer

import (
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var htmlPolicy = bluemonday.UGCPolicy()

// SanitizeHTML removes anything outside the user-generated-content allowlist.
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(input)
}

// StripTags removes all HTML/XML tags and returns only the text content.
// Not an XSS defence; use SanitizeHTML for markup that reaches a browser.
//
//   - "<p>Hello <strong>World</strong></p>" -> "Hello World"
//   - "Plain text" -> "Plain text"
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") {
		return input
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}

// CleanGeneratedText turns raw model output into plain prose: tags are
// stripped, line endings normalised, each line trimmed and blank lines dropped.
func CleanGeneratedText(input string) string {
	text := StripTags(strings.ReplaceAll(input, "\r\n", "\n"))
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
