package service

import "time"

var (
	MaskAPIKey    = maskAPIKey
	IsMaskedKey   = isMaskedKey
	ReviewContext = reviewContext
)

const (
	KeyAPIKey           = keyAPIKey
	KeyTheme            = keyTheme
	KeyMaxTextLength    = keyMaxTextLength
	KeyHidePopupWarning = keyHidePopupWarning

	CredentialMissingMessage = credentialMissingMessage
)

// SetTranslationClock replaces the clock used for review timestamps.
func SetTranslationClock(s TranslationService, now func() time.Time) {
	if ts, ok := s.(*translationService); ok {
		ts.now = now
	}
}
