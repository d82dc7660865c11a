package sanitizer_test

import (
	"testing"

	"dutchghostwriter/backend/pkg/sanitizer"

	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "nested tags", input: "<p>Hello <strong>World</strong></p>", expected: "Hello World"},
		{name: "plain text", input: "Plain text", expected: "Plain text"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "entities decoded", input: "<b>Fish &amp; chips</b>", expected: "Fish & chips"},
		{name: "less-than in prose", input: "3 < 4 is true", expected: "3 < 4 is true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestCleanGeneratedText(t *testing.T) {
	input := "<p>The sun is warm.</p>\r\n\r\n  Birds sing in the park.  \n\n<em>We walk home.</em>\n"
	require.Equal(t, "The sun is warm.\nBirds sing in the park.\nWe walk home.", sanitizer.CleanGeneratedText(input))
}

func TestSanitizeHTML(t *testing.T) {
	t.Run("keeps formatting tags", func(t *testing.T) {
		out := sanitizer.SanitizeHTML("<p><strong>ok</strong> <em>fine</em> <code>x</code></p>")
		require.Equal(t, "<p><strong>ok</strong> <em>fine</em> <code>x</code></p>", out)
	})

	t.Run("drops scripts", func(t *testing.T) {
		out := sanitizer.SanitizeHTML("<p>hi</p><script>alert(1)</script>")
		require.NotContains(t, out, "script")
		require.Contains(t, out, "<p>hi</p>")
	})

	t.Run("drops event handlers", func(t *testing.T) {
		out := sanitizer.SanitizeHTML(`<p onclick="steal()">hi</p>`)
		require.NotContains(t, out, "onclick")
	})
}
