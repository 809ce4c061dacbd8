// Package word implements the word graph store using PostgreSQL.
// It manages the words table, the two owned-text tables (definitions,
// examples) and the two symmetric junction tables (word_translations,
// word_synonyms). A symmetric edge is persisted as two directed rows, so
// hydration only ever reads outgoing rows.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gtservice/internal/adapter/postgres"
	"github.com/heartmarshall/gtservice/internal/domain"
)

// Repo provides word graph persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	translationsTable = "word_translations"
	synonymsTable     = "word_synonyms"
	definitionsTable  = "definitions"
	examplesTable     = "examples"
)

const wordColumnsSQL = "id, word, language, freshness, deleted, created_at, updated_at"

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByKeySQL = `
SELECT ` + wordColumnsSQL + `
FROM words
WHERE word = $1 AND language = $2`

// GetFullByKey returns the word for a (text, language) key with all four
// relation lists hydrated. The row is returned regardless of its deleted
// flag; visibility policy belongs to the caller. Soft-deleted words never
// appear inside the hydrated relation lists.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetFullByKey(ctx context.Context, word, language string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByKeySQL, word, language)

	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", keyString(word, language))
	}

	if err := r.loadRelations(ctx, q, []*domain.Word{&w}); err != nil {
		return nil, err
	}

	return &w, nil
}

// GetByKeys resolves a batch of (text, language) keys to existing words in a
// single query. Rows are shallow (no relations) and include soft-deleted
// words so reconciliation can revive them instead of colliding on the
// unique index. Missing keys are silently absent; order is unspecified.
func (r *Repo) GetByKeys(ctx context.Context, keys []domain.WordKey) ([]domain.Word, error) {
	if len(keys) == 0 {
		return []domain.Word{}, nil
	}

	or := make(sq.Or, 0, len(keys))
	for _, k := range keys {
		or = append(or, sq.Eq{"word": k.Word, "language": k.Language})
	}

	sql, args, err := qb.Select(wordColumnsSQL).From("words").Where(or).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch key query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get words by keys: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("get words by keys: %w", err)
	}

	return words, nil
}

// Search returns one page of live words matching the filter together with
// the total match count. The count is computed independently of the page
// window. Returned words are fully hydrated.
func (r *Repo) Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	where := sq.And{sq.Eq{"deleted": false}}
	if filter.WordPart != nil && *filter.WordPart != "" {
		where = append(where, sq.Like{"word": "%" + *filter.WordPart + "%"})
	}
	if filter.Language != nil && *filter.Language != "" {
		where = append(where, sq.Eq{"language": *filter.Language})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := qb.Select("COUNT(*)").From("words").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	pageSQL, pageArgs, err := qb.Select(wordColumnsSQL).
		From("words").
		Where(where).
		OrderBy("word", "language").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search query: %w", err)
	}

	rows, err := q.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("search words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("search words: %w", err)
	}

	refs := make([]*domain.Word, len(words))
	for i := range words {
		refs[i] = &words[i]
	}
	if err := r.loadRelations(ctx, q, refs); err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertWordSQL = `
INSERT INTO words (id, word, language, freshness, deleted)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at`

// Create inserts a word row. A live or soft-deleted row with the same
// (text, language) pair maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, insertWordSQL,
		w.ID, w.Word, w.Language, w.Freshness, w.Deleted,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "word", keyString(w.Word, w.Language))
	}

	return nil
}

const updateWordSQL = `
UPDATE words
SET freshness = $2, deleted = $3, updated_at = now()
WHERE id = $1
RETURNING updated_at`

// Update persists the freshness and deleted flags of an existing word.
func (r *Repo) Update(ctx context.Context, w *domain.Word) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, updateWordSQL, w.ID, w.Freshness, w.Deleted).Scan(&w.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "word", keyString(w.Word, w.Language))
	}

	return nil
}

const softDeleteSQL = `
UPDATE words
SET deleted = TRUE, updated_at = now()
WHERE word = $1 AND language = $2 AND NOT deleted`

// SoftDelete marks the live word for a key as deleted. Reports whether any
// row was changed; deleting an absent or already-deleted word is a no-op.
func (r *Repo) SoftDelete(ctx context.Context, word, language string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, softDeleteSQL, word, language)
	if err != nil {
		return false, postgres.MapError(err, "word", keyString(word, language))
	}

	return tag.RowsAffected() > 0, nil
}

// ReplaceTranslations replaces the full translation edge set of a word.
// Every edge touching the word is dropped first, so the relation disappears
// from both endpoints before the new set is written in both directions.
func (r *Repo) ReplaceTranslations(ctx context.Context, wordID uuid.UUID, targetIDs []uuid.UUID) error {
	return r.replaceEdges(ctx, translationsTable, wordID, targetIDs)
}

// ReplaceSynonyms replaces the full synonym edge set of a word.
func (r *Repo) ReplaceSynonyms(ctx context.Context, wordID uuid.UUID, targetIDs []uuid.UUID) error {
	return r.replaceEdges(ctx, synonymsTable, wordID, targetIDs)
}

func (r *Repo) replaceEdges(ctx context.Context, table string, wordID uuid.UUID, targetIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	deleteSQL := fmt.Sprintf(
		"DELETE FROM %s WHERE from_word_id = $1 OR to_word_id = $1", table)
	if _, err := q.Exec(ctx, deleteSQL, wordID); err != nil {
		return postgres.MapError(err, table, wordID.String())
	}

	if len(targetIDs) == 0 {
		return nil
	}

	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (from_word_id, to_word_id) VALUES ($1, $2), ($2, $1)", table)

	batch := &pgx.Batch{}
	for _, targetID := range targetIDs {
		batch.Queue(insertSQL, wordID, targetID)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range targetIDs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, table, wordID.String())
		}
	}

	return nil
}

// AddDefinitions appends definition rows to a word. Text-level deduplication
// against existing rows is the merge engine's job; the repo inserts blindly.
func (r *Repo) AddDefinitions(ctx context.Context, wordID uuid.UUID, texts []string) error {
	return r.insertOwnedTexts(ctx, definitionsTable, wordID, texts)
}

// AddExamples appends example rows to a word.
func (r *Repo) AddExamples(ctx context.Context, wordID uuid.UUID, texts []string) error {
	return r.insertOwnedTexts(ctx, examplesTable, wordID, texts)
}

func (r *Repo) insertOwnedTexts(ctx context.Context, table string, wordID uuid.UUID, texts []string) error {
	if len(texts) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (id, word_id, text) VALUES ($1, $2, $3)", table)

	batch := &pgx.Batch{}
	for _, text := range texts {
		batch.Queue(insertSQL, uuid.New(), wordID, text)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range texts {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, table, wordID.String())
		}
	}

	return nil
}

// Ping reports whether the database is reachable (health checks).
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Relation hydration
// ---------------------------------------------------------------------------

const edgesSQL = `
SELECT e.from_word_id, w.id, w.word, w.language, w.freshness, w.deleted, w.created_at, w.updated_at
FROM %s e
JOIN words w ON w.id = e.to_word_id
WHERE e.from_word_id = ANY($1::uuid[]) AND NOT w.deleted
ORDER BY w.word, w.language`

const ownedTextsSQL = `
SELECT id, word_id, text
FROM %s
WHERE word_id = ANY($1::uuid[])
ORDER BY text`

// loadRelations hydrates all four relation lists for a batch of words using
// one query per relation kind.
func (r *Repo) loadRelations(ctx context.Context, q postgres.Querier, words []*domain.Word) error {
	if len(words) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Word, len(words))
	ids := make([]uuid.UUID, 0, len(words))
	for _, w := range words {
		w.Translations = []domain.Word{}
		w.Synonyms = []domain.Word{}
		w.Definitions = []domain.Definition{}
		w.Examples = []domain.Example{}
		byID[w.ID] = w
		ids = append(ids, w.ID)
	}

	if err := r.loadEdges(ctx, q, translationsTable, ids, byID, func(w *domain.Word, related domain.Word) {
		w.Translations = append(w.Translations, related)
	}); err != nil {
		return err
	}

	if err := r.loadEdges(ctx, q, synonymsTable, ids, byID, func(w *domain.Word, related domain.Word) {
		w.Synonyms = append(w.Synonyms, related)
	}); err != nil {
		return err
	}

	if err := r.loadOwnedTexts(ctx, q, definitionsTable, ids, func(wordID, id uuid.UUID, text string) {
		w := byID[wordID]
		w.Definitions = append(w.Definitions, domain.Definition{ID: id, WordID: wordID, Text: text})
	}); err != nil {
		return err
	}

	return r.loadOwnedTexts(ctx, q, examplesTable, ids, func(wordID, id uuid.UUID, text string) {
		w := byID[wordID]
		w.Examples = append(w.Examples, domain.Example{ID: id, WordID: wordID, Text: text})
	})
}

func (r *Repo) loadEdges(
	ctx context.Context,
	q postgres.Querier,
	table string,
	ids []uuid.UUID,
	byID map[uuid.UUID]*domain.Word,
	attach func(w *domain.Word, related domain.Word),
) error {
	rows, err := q.Query(ctx, fmt.Sprintf(edgesSQL, table), ids)
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var fromID uuid.UUID
		var related domain.Word
		var freshness string
		if err := rows.Scan(
			&fromID,
			&related.ID, &related.Word, &related.Language, &freshness,
			&related.Deleted, &related.CreatedAt, &related.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan %s row: %w", table, err)
		}
		related.Freshness = domain.Freshness(freshness)
		attach(byID[fromID], related)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}

	return nil
}

func (r *Repo) loadOwnedTexts(
	ctx context.Context,
	q postgres.Querier,
	table string,
	ids []uuid.UUID,
	attach func(wordID, id uuid.UUID, text string),
) error {
	rows, err := q.Query(ctx, fmt.Sprintf(ownedTextsSQL, table), ids)
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, wordID uuid.UUID
		var text string
		if err := rows.Scan(&id, &wordID, &text); err != nil {
			return fmt.Errorf("scan %s row: %w", table, err)
		}
		attach(wordID, id, text)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (domain.Word, error) {
	var w domain.Word
	var freshness string
	err := row.Scan(&w.ID, &w.Word, &w.Language, &freshness, &w.Deleted, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return domain.Word{}, err
	}
	w.Freshness = domain.Freshness(freshness)
	return w, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}

func keyString(word, language string) string {
	return word + "/" + language
}
