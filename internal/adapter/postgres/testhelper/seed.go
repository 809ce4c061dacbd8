package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gtservice/internal/domain"
)

// SeedWord inserts a word row directly, bypassing the repository, and
// returns the resulting domain value with empty relation lists.
func SeedWord(t *testing.T, pool *pgxpool.Pool, word, language string, freshness domain.Freshness, deleted bool) *domain.Word {
	t.Helper()

	w := &domain.Word{
		ID:        uuid.New(),
		Word:      word,
		Language:  language,
		Freshness: freshness,
		Deleted:   deleted,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (id, word, language, freshness, deleted)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		w.ID, w.Word, w.Language, w.Freshness, w.Deleted,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed word %s/%s: %v", word, language, err)
	}

	return w
}

// SeedEdge inserts both directed rows of a symmetric edge into the given
// junction table ("word_translations" or "word_synonyms").
func SeedEdge(t *testing.T, pool *pgxpool.Pool, table string, fromID, toID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"INSERT INTO "+table+" (from_word_id, to_word_id) VALUES ($1, $2), ($2, $1)",
		fromID, toID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed %s edge: %v", table, err)
	}
}
