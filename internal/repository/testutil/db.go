package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"dutchghostwriter/backend/internal/db"
	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

var snowflakeOnce sync.Once

// NewTestDB opens a migrated in-memory SQLite database private to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedTranslation inserts a translation row directly and returns its id.
// Zero timestamps default to now.
func SeedTranslation(t *testing.T, db *sql.DB, translation model.Translation) int64 {
	t.Helper()

	if translation.ID == 0 {
		translation.ID = snowflake.NextID()
	}
	now := time.Now().UTC()
	if translation.CreatedAt.IsZero() {
		translation.CreatedAt = now
	}
	if translation.UpdatedAt.IsZero() {
		translation.UpdatedAt = translation.CreatedAt
	}
	if translation.Sentences == nil {
		translation.Sentences = []model.Sentence{}
	}
	sentences, err := json.Marshal(translation.Sentences)
	if err != nil {
		t.Fatalf("failed to encode sentences: %v", err)
	}

	_, err = db.ExecContext(
		context.Background(),
		`INSERT INTO translations (id, title, original_text, sentences, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		translation.ID, translation.Title, translation.OriginalText, string(sentences),
		translation.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000Z"),
		translation.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000000000Z"),
	)
	if err != nil {
		t.Fatalf("failed to seed translation: %v", err)
	}

	return translation.ID
}

func SeedSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now,
	)
	if err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}
}
