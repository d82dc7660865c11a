package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"dutchghostwriter/backend/internal/model"
)

// timeLayout is fixed width so that stored timestamps sort chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func formatTime(value time.Time) string {
	return value.UTC().Format(timeLayout)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

func encodeSentences(sentences []model.Sentence) (string, error) {
	if sentences == nil {
		sentences = []model.Sentence{}
	}
	data, err := json.Marshal(sentences)
	if err != nil {
		return "", fmt.Errorf("encode sentences: %w", err)
	}
	return string(data), nil
}

func decodeSentences(value string) ([]model.Sentence, error) {
	sentences := []model.Sentence{}
	if value == "" {
		return sentences, nil
	}
	if err := json.Unmarshal([]byte(value), &sentences); err != nil {
		return nil, fmt.Errorf("decode sentences: %w", err)
	}
	return sentences, nil
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
