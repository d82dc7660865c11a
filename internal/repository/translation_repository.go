//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/pkg/snowflake"
)

// TranslationRepository is the document store for translation aggregates.
type TranslationRepository interface {
	Create(ctx context.Context, translation model.Translation) (*model.Translation, error)
	GetByID(ctx context.Context, id int64) (*model.Translation, error)
	List(ctx context.Context) ([]model.Translation, error)
	Update(ctx context.Context, id int64, patch model.TranslationPatch) (*model.Translation, error)
	Delete(ctx context.Context, id int64) error
}

type translationRepository struct {
	db  *sql.DB
	now func() time.Time
}

var translationColumns = []string{"id", "title", "original_text", "sentences", "created_at", "updated_at"}

func NewTranslationRepository(db *sql.DB) TranslationRepository {
	return &translationRepository{db: db, now: time.Now}
}

// Create assigns a new id and sets both timestamps. Any id on the input is ignored.
func (r *translationRepository) Create(ctx context.Context, translation model.Translation) (*model.Translation, error) {
	out := translation.Clone()
	out.ID = snowflake.NextID()
	now := r.now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now

	sentences, err := encodeSentences(out.Sentences)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Insert("translations").
		Columns(translationColumns...).
		Values(out.ID, out.Title, out.OriginalText, sentences, formatTime(now), formatTime(now)).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert translation: %w", err)
	}
	return &out, nil
}

// GetByID returns nil, nil when the id is absent.
func (r *translationRepository) GetByID(ctx context.Context, id int64) (*model.Translation, error) {
	return getTranslation(ctx, r.db, id)
}

// List returns every translation, most recently updated first.
func (r *translationRepository) List(ctx context.Context) ([]model.Translation, error) {
	query, args, err := sq.Select(translationColumns...).
		From("translations").
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations := []model.Translation{}
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		translations = append(translations, *t)
	}
	return translations, rows.Err()
}

// Update merges the non-nil patch fields into the stored record and bumps
// updated_at. Returns sql.ErrNoRows when the id is absent.
func (r *translationRepository) Update(ctx context.Context, id int64, patch model.TranslationPatch) (*model.Translation, error) {
	var merged *model.Translation
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		existing, err := getTranslation(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return sql.ErrNoRows
		}

		if patch.Title != nil {
			existing.Title = *patch.Title
		}
		if patch.OriginalText != nil {
			existing.OriginalText = *patch.OriginalText
		}
		if patch.Sentences != nil {
			existing.Sentences = model.CloneSentences(*patch.Sentences)
		}

		now := r.now().UTC()
		if !now.After(existing.UpdatedAt) {
			now = existing.UpdatedAt.Add(time.Nanosecond)
		}
		existing.UpdatedAt = now

		sentences, err := encodeSentences(existing.Sentences)
		if err != nil {
			return err
		}
		query, args, err := sq.Update("translations").
			Set("title", existing.Title).
			Set("original_text", existing.OriginalText).
			Set("sentences", sentences).
			Set("updated_at", formatTime(now)).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update translation: %w", err)
		}
		merged = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Delete returns sql.ErrNoRows when the id is absent.
func (r *translationRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("translations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func getTranslation(ctx context.Context, q dbtx, id int64) (*model.Translation, error) {
	query, args, err := sq.Select(translationColumns...).
		From("translations").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTranslation(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTranslation(row rowScanner) (*model.Translation, error) {
	var t model.Translation
	var sentences, createdAt, updatedAt string
	if err := row.Scan(&t.ID, &t.Title, &t.OriginalText, &sentences, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if t.Sentences, err = decodeSentences(sentences); err != nil {
		return nil, fmt.Errorf("translation %d: %w", t.ID, err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("translation %d created_at: %w", t.ID, err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("translation %d updated_at: %w", t.ID, err)
	}
	return &t, nil
}
