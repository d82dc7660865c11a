// Package markdown renders the small Markdown dialect used by review
// feedback: headers, bold, italic, inline code, flat bullet lists,
// blockquotes, paragraphs and line breaks. Tables, links, nested lists
// and fenced code are left as text.
package markdown

import (
	"html"
	"regexp"
	"strings"

	"dutchghostwriter/backend/pkg/sanitizer"
)

var (
	codePattern   = regexp.MustCompile("`([^`\n]+)`")
	boldPattern   = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// the input is escaped before any tag is added, so quote markers arrive as &gt;
const quotePrefix = "&gt;"

type renderer struct {
	out       []string
	paragraph []string
	list      []string
	quote     []string
}

// Render converts input to sanitized HTML.
func Render(input string) string {
	escaped := html.EscapeString(strings.ReplaceAll(input, "\r\n", "\n"))

	r := &renderer{}
	for _, line := range strings.Split(escaped, "\n") {
		r.line(strings.TrimRight(line, " \t"))
	}
	r.flush()

	return sanitizer.SanitizeHTML(strings.Join(r.out, "\n"))
}

func (r *renderer) line(line string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		r.flush()
	case strings.HasPrefix(trimmed, "### "):
		r.heading("h3", trimmed[4:])
	case strings.HasPrefix(trimmed, "## "):
		r.heading("h2", trimmed[3:])
	case strings.HasPrefix(trimmed, "# "):
		r.heading("h1", trimmed[2:])
	case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
		r.flushParagraph()
		r.flushQuote()
		r.list = append(r.list, "<li>"+inline(strings.TrimSpace(trimmed[2:]))+"</li>")
	case strings.HasPrefix(trimmed, quotePrefix):
		r.flushParagraph()
		r.flushList()
		r.quote = append(r.quote, inline(strings.TrimSpace(strings.TrimPrefix(trimmed, quotePrefix))))
	default:
		r.flushList()
		r.flushQuote()
		r.paragraph = append(r.paragraph, inline(trimmed))
	}
}

func (r *renderer) heading(tag, text string) {
	r.flush()
	r.out = append(r.out, "<"+tag+">"+inline(strings.TrimSpace(text))+"</"+tag+">")
}

func (r *renderer) flush() {
	r.flushParagraph()
	r.flushList()
	r.flushQuote()
}

func (r *renderer) flushParagraph() {
	if len(r.paragraph) == 0 {
		return
	}
	r.out = append(r.out, "<p>"+strings.Join(r.paragraph, "<br>")+"</p>")
	r.paragraph = nil
}

func (r *renderer) flushList() {
	if len(r.list) == 0 {
		return
	}
	r.out = append(r.out, "<ul>"+strings.Join(r.list, "")+"</ul>")
	r.list = nil
}

func (r *renderer) flushQuote() {
	if len(r.quote) == 0 {
		return
	}
	r.out = append(r.out, "<blockquote>"+strings.Join(r.quote, "<br>")+"</blockquote>")
	r.quote = nil
}

// inline formats code spans first; emphasis applies only to the text between them.
func inline(text string) string {
	var sb strings.Builder
	last := 0
	for _, m := range codePattern.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(emphasis(text[last:m[0]]))
		sb.WriteString("<code>" + text[m[2]:m[3]] + "</code>")
		last = m[1]
	}
	sb.WriteString(emphasis(text[last:]))
	return sb.String()
}

func emphasis(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	return italicPattern.ReplaceAllString(text, "<em>$1</em>")
}
