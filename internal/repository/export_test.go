package repository

import (
	"database/sql"
	"time"
)

var (
	FormatTime      = formatTime
	ParseTime       = parseTime
	EncodeSentences = encodeSentences
	DecodeSentences = decodeSentences
)

// NewTranslationRepositoryWithClock lets tests control the timestamps written by the store.
func NewTranslationRepositoryWithClock(db *sql.DB, now func() time.Time) TranslationRepository {
	return &translationRepository{db: db, now: now}
}
