package model

import "time"

// Translation is the aggregate root: a source text and its per-sentence Dutch rendering.
type Translation struct {
	ID           int64
	Title        string
	OriginalText string
	Sentences    []Sentence
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sentence ids are unique only within the owning translation.
type Sentence struct {
	ID       int          `json:"id"`
	English  string       `json:"english"`
	Dutch    string       `json:"dutch"`
	AIReview *ReviewCache `json:"aiReview,omitempty"`
}

// ReviewCache holds the critique generated for the exact English/Dutch pair
// present when it was requested.
type ReviewCache struct {
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// TranslationPatch lists the fields an update merges into a stored record.
// Nil fields are left untouched.
type TranslationPatch struct {
	Title        *string
	OriginalText *string
	Sentences    *[]Sentence
}

// Clone returns a deep copy that shares no mutable state with t.
func (t Translation) Clone() Translation {
	out := t
	out.Sentences = CloneSentences(t.Sentences)
	return out
}

// CloneSentences deep-copies a sentence list, including review caches.
// A nil input yields an empty, non-nil slice.
func CloneSentences(sentences []Sentence) []Sentence {
	out := make([]Sentence, len(sentences))
	for i, s := range sentences {
		out[i] = s
		if s.AIReview != nil {
			review := *s.AIReview
			out[i].AIReview = &review
		}
	}
	return out
}

// SentenceIndex returns the position of the sentence with the given id, or -1.
func (t Translation) SentenceIndex(id int) int {
	for i, s := range t.Sentences {
		if s.ID == id {
			return i
		}
	}
	return -1
}
