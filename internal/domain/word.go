package domain

import (
	"time"

	"github.com/google/uuid"
)

// Freshness tells whether a word has been reconciled with the external
// provider since it was first seen.
type Freshness string

const (
	// FreshnessFresh marks a word whose relations reflect the latest
	// successful provider fetch.
	FreshnessFresh Freshness = "FRESH"
	// FreshnessStale marks a cached word that is due for a refresh.
	// Newly created shell words start out stale.
	FreshnessStale Freshness = "STALE"
)

func (f Freshness) String() string { return string(f) }

func (f Freshness) IsValid() bool {
	switch f {
	case FreshnessFresh, FreshnessStale:
		return true
	}
	return false
}

// WordKey identifies a word by its normalized text and 2-letter language code.
// The pair is unique across the whole store.
type WordKey struct {
	Word     string
	Language string
}

// Word is the central entity of the store: a (text, language) pair with its
// relation lists. Translations and synonyms reference other persisted words;
// definitions and examples are owned text rows.
//
// Related words in Translations/Synonyms are shallow: their own relation
// lists are never loaded.
type Word struct {
	ID        uuid.UUID
	Word      string
	Language  string
	Freshness Freshness
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Translations []Word
	Synonyms     []Word
	Definitions  []Definition
	Examples     []Example
}

// Key returns the identity pair of the word.
func (w *Word) Key() WordKey {
	return WordKey{Word: w.Word, Language: w.Language}
}

// Definition is a single definition text owned by exactly one word.
type Definition struct {
	ID     uuid.UUID
	WordID uuid.UUID
	Text   string
}

// Example is a single usage example owned by exactly one word.
type Example struct {
	ID     uuid.UUID
	WordID uuid.UUID
	Text   string
}
