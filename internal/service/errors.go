package service

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrInvalid              = errors.New("invalid")
	ErrCredentialMissing    = errors.New("no API key configured")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrNoCurrentTranslation = errors.New("no translation is open")
	ErrReviewNotOpen        = errors.New("no review is open")
	ErrUpstream             = errors.New("text generation request failed")
)

// credentialMissingMessage is shown to the user when a review is requested without a key.
const credentialMissingMessage = "Add your API key in Settings to use AI review."
