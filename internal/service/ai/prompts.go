package ai

import (
	"fmt"
	"strings"
)

// ReviewRequest carries one sentence pair plus the neighbouring English
// sentences shown to the model as context.
type ReviewRequest struct {
	English       string
	Dutch         string
	ContextBefore []string
	ContextAfter  []string
}

// Preset is a canned topic for text generation.
type Preset struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

var presets = []Preset{
	{ID: "daily-life", Label: "Daily life", Prompt: "A short story about an ordinary day: waking up, going to work or school, and coming home."},
	{ID: "travel", Label: "Travel", Prompt: "A traveller arriving in a Dutch city, finding the hotel and asking for directions."},
	{ID: "food", Label: "Food & cooking", Prompt: "Two friends cooking dinner together and talking about their favourite dishes."},
	{ID: "work", Label: "At work", Prompt: "A conversation between colleagues planning a meeting and discussing a deadline."},
	{ID: "nature", Label: "Nature", Prompt: "A walk through the countryside in autumn, describing the weather, animals and landscape."},
}

// Presets returns a copy of the preset topics in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

const validatePrompt = "Reply with the single word: OK"

// GenerationPrompt asks for learner-level English prose, one sentence per line.
func GenerationPrompt(topic string, maxLength int) string {
	var sb strings.Builder
	sb.WriteString("You write practice texts for people learning to translate English into Dutch.\n")
	sb.WriteString("Write a short, natural English text for an intermediate learner about the topic below.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Use clear, everyday vocabulary and varied sentence structures.\n")
	sb.WriteString("- Put exactly one sentence on each line.\n")
	fmt.Fprintf(&sb, "- Keep the whole text under %d characters.\n", maxLength)
	sb.WriteString("- Output only the text. No title, no numbering, no commentary, no Markdown.\n\n")
	fmt.Fprintf(&sb, "Topic: %s\n", strings.TrimSpace(topic))
	return sb.String()
}

// ReviewPrompt builds the critique prompt. The answer is Markdown with a fixed
// section layout.
func ReviewPrompt(req ReviewRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a patient Dutch teacher reviewing a learner's translation of one English sentence into Dutch.\n\n")

	if len(req.ContextBefore) > 0 || len(req.ContextAfter) > 0 {
		sb.WriteString("Surrounding English text, for context only:\n")
		for _, s := range req.ContextBefore {
			fmt.Fprintf(&sb, "  %s\n", s)
		}
		sb.WriteString("  [SENTENCE UNDER REVIEW]\n")
		for _, s := range req.ContextAfter {
			fmt.Fprintf(&sb, "  %s\n", s)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "English: %s\n", strings.TrimSpace(req.English))
	dutch := strings.TrimSpace(req.Dutch)
	if dutch == "" {
		dutch = "(no translation yet)"
	}
	fmt.Fprintf(&sb, "Dutch (learner): %s\n\n", dutch)

	sb.WriteString("Answer in English using exactly this Markdown layout:\n\n")
	sb.WriteString("## Assessment\n")
	sb.WriteString("One of **Excellent**, **Good**, **Needs work** or **Incorrect**.\n\n")
	sb.WriteString("## Feedback\n")
	sb.WriteString("Two or three sentences on meaning, grammar and word order.\n\n")
	sb.WriteString("## Corrections\n")
	sb.WriteString("A bullet list of specific mistakes with the fix in `inline code`. Write \"None\" if there are none.\n\n")
	sb.WriteString("## Suggested translation\n")
	sb.WriteString("> A natural Dutch translation.\n\n")
	sb.WriteString("## Tip\n")
	sb.WriteString("One short, practical tip the learner can reuse.\n\n")
	sb.WriteString("Do not use tables, links or code blocks.\n")
	return sb.String()
}
