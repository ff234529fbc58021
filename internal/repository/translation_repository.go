package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// TranslationRepo persists UI translations with upsert semantics on
// (language_code, key).
type TranslationRepo struct{ DB *sql.DB }

func NewTranslationRepo(db *sql.DB) *TranslationRepo { return &TranslationRepo{DB: db} }

// Upsert inserts or replaces the value for (language_code, key).
func (r *TranslationRepo) Upsert(ctx context.Context, t *model.Translation) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO translations (language_code, key, value)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (language_code, key) DO UPDATE SET value = EXCLUDED.value
		 RETURNING id`,
		t.LanguageCode, t.Key, t.Value,
	).Scan(&t.ID)
}

// ListByLanguage returns every translation for a language as a key -> value
// map, which is what the frontend consumes.
func (r *TranslationRepo) ListByLanguage(ctx context.Context, lang string) (map[string]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT key, value FROM translations WHERE language_code = $1", lang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}
