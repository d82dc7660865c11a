package handler

import "time"

// Export for testing
type TranslationResponse = translationResponse
type TranslationSummaryResponse = translationSummaryResponse
type SentenceResponse = sentenceResponse
type ReviewStateResponse = reviewStateResponse
type SettingsResponse = settingsResponse
type SegmentResponse = segmentResponse

var WriteServiceError = writeServiceError
var IDToString = idToString

// SetKeepAlive shortens the event stream heartbeat.
func SetKeepAlive(h *EventsHandler, d time.Duration) {
	h.keepAlive = d
}
