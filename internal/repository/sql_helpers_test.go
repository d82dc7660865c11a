package repository_test

import (
	"sort"
	"testing"
	"time"

	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	t.Run("fixed width nanoseconds", func(t *testing.T) {
		fixedTime := time.Date(2025, 1, 4, 12, 34, 56, 789000000, time.UTC)
		require.Equal(t, "2025-01-04T12:34:56.789000000Z", repository.FormatTime(fixedTime))
	})

	t.Run("converts non-UTC time to UTC", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		localTime := time.Date(2025, 1, 4, 13, 34, 56, 0, loc)
		require.Equal(t, "2025-01-04T12:34:56.000000000Z", repository.FormatTime(localTime))
	})

	t.Run("text order matches time order", func(t *testing.T) {
		base := time.Date(2025, 1, 4, 12, 34, 56, 0, time.UTC)
		times := []time.Time{
			base.Add(100 * time.Millisecond),
			base,
			base.Add(time.Nanosecond),
			base.Add(10 * time.Millisecond),
		}
		formatted := make([]string, len(times))
		for i, ts := range times {
			formatted[i] = repository.FormatTime(ts)
		}
		sort.Strings(formatted)

		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
		for i, ts := range times {
			require.Equal(t, repository.FormatTime(ts), formatted[i])
		}
	})
}

func TestParseTime(t *testing.T) {
	t.Run("parses stored layout", func(t *testing.T) {
		result, err := repository.ParseTime("2025-01-04T12:34:56.123456789Z")
		require.NoError(t, err)
		require.True(t, result.Equal(time.Date(2025, 1, 4, 12, 34, 56, 123456789, time.UTC)))
	})

	t.Run("parses short RFC3339", func(t *testing.T) {
		result, err := repository.ParseTime("2025-01-04T12:34:56Z")
		require.NoError(t, err)
		require.True(t, result.Equal(time.Date(2025, 1, 4, 12, 34, 56, 0, time.UTC)))
	})

	t.Run("returns error for invalid format", func(t *testing.T) {
		_, err := repository.ParseTime("2025-01-04 12:34:56")
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		original := time.Date(2025, 1, 4, 12, 34, 56, 123456789, time.UTC)
		parsed, err := repository.ParseTime(repository.FormatTime(original))
		require.NoError(t, err)
		require.True(t, parsed.Equal(original))
	})
}

func TestSentenceEncoding(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		value, err := repository.EncodeSentences(nil)
		require.NoError(t, err)
		require.Equal(t, "[]", value)
	})

	t.Run("review cache omitted when absent", func(t *testing.T) {
		value, err := repository.EncodeSentences([]model.Sentence{{ID: 1, English: "Hi."}})
		require.NoError(t, err)
		require.NotContains(t, value, "aiReview")
	})

	t.Run("empty column decodes to empty slice", func(t *testing.T) {
		sentences, err := repository.DecodeSentences("")
		require.NoError(t, err)
		require.NotNil(t, sentences)
		require.Empty(t, sentences)
	})

	t.Run("malformed column is an error", func(t *testing.T) {
		_, err := repository.DecodeSentences("{not json")
		require.Error(t, err)
	})
}
