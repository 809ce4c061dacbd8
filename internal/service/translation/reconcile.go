package translation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gtservice/internal/domain"
	"github.com/heartmarshall/gtservice/internal/provider"
)

// reconcile merges one fetched result into the word graph. It runs inside a
// transaction carried in ctx; every step works through the word repo so the
// whole graph mutation commits or rolls back as a unit.
//
// Steps: resolve or create every referenced word (shells stay STALE), replace
// the head word's translation and synonym edges, append new definition and
// example texts, then mark the head FRESH and undeleted.
func (s *Service) reconcile(ctx context.Context, word, language string, fetched *provider.FetchedTranslation) error {
	headKey := domain.WordKey{Word: word, Language: language}

	// Existing definitions/examples are needed to keep appends duplicate-free.
	var existingDefs, existingExamples map[string]bool
	full, err := s.words.GetFullByKey(ctx, word, language)
	switch {
	case err == nil:
		existingDefs = textSet(full.Definitions)
		existingExamples = textSetExamples(full.Examples)
	case errors.Is(err, domain.ErrNotFound):
		// New word: nothing to dedup against.
	default:
		return fmt.Errorf("get head word: %w", err)
	}

	translationKeys := candidateKeys(fetched.Translations, headKey)
	synonymKeys := candidateKeys(fetched.Synonyms, headKey)

	resolved, err := s.resolveOrCreate(ctx, headKey, translationKeys, synonymKeys)
	if err != nil {
		return err
	}
	head := resolved[headKey]

	if err := s.words.ReplaceTranslations(ctx, head.ID, keysToIDs(resolved, translationKeys)); err != nil {
		return fmt.Errorf("replace translations: %w", err)
	}
	if err := s.words.ReplaceSynonyms(ctx, head.ID, keysToIDs(resolved, synonymKeys)); err != nil {
		return fmt.Errorf("replace synonyms: %w", err)
	}

	if defs := newTexts(fetched.Definitions, existingDefs); len(defs) > 0 {
		if err := s.words.AddDefinitions(ctx, head.ID, defs); err != nil {
			return fmt.Errorf("add definitions: %w", err)
		}
	}
	if examples := newTexts(fetched.Examples, existingExamples); len(examples) > 0 {
		if err := s.words.AddExamples(ctx, head.ID, examples); err != nil {
			return fmt.Errorf("add examples: %w", err)
		}
	}

	// A successful merge always leaves the head fresh and visible, reviving
	// a soft-deleted row in place.
	head.Freshness = domain.FreshnessFresh
	head.Deleted = false
	if err := s.words.Update(ctx, head); err != nil {
		return fmt.Errorf("update head word: %w", err)
	}

	return nil
}

// resolveOrCreate maps every key (the head plus all candidates) to a persisted
// word row, creating STALE shell rows for keys the store does not have yet.
// A key referenced by both relation lists resolves to a single row.
func (s *Service) resolveOrCreate(
	ctx context.Context,
	headKey domain.WordKey,
	translationKeys, synonymKeys []domain.WordKey,
) (map[domain.WordKey]*domain.Word, error) {
	keys := make([]domain.WordKey, 0, 1+len(translationKeys)+len(synonymKeys))
	seen := make(map[domain.WordKey]bool, cap(keys))
	for _, k := range append(append([]domain.WordKey{headKey}, translationKeys...), synonymKeys...) {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}

	existing, err := s.words.GetByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("resolve words: %w", err)
	}

	resolved := make(map[domain.WordKey]*domain.Word, len(keys))
	for i := range existing {
		resolved[existing[i].Key()] = &existing[i]
	}

	for _, k := range keys {
		if _, ok := resolved[k]; ok {
			continue
		}
		w := &domain.Word{
			ID:        uuid.New(),
			Word:      k.Word,
			Language:  k.Language,
			Freshness: domain.FreshnessStale,
		}
		if err := s.words.Create(ctx, w); err != nil {
			return nil, fmt.Errorf("create word %q (%s): %w", k.Word, k.Language, err)
		}
		resolved[k] = w
	}

	return resolved, nil
}

// candidateKeys normalizes fetched word candidates into unique keys,
// keeping the first occurrence of each and dropping self-references and
// candidates that fail validation.
func candidateKeys(candidates []provider.WordCandidate, self domain.WordKey) []domain.WordKey {
	keys := make([]domain.WordKey, 0, len(candidates))
	seen := map[domain.WordKey]bool{self: true}
	for _, c := range candidates {
		k := domain.WordKey{
			Word:     domain.NormalizeWord(c.Word),
			Language: domain.NormalizeLanguage(c.Language),
		}
		if domain.ValidateWord(k.Word) != nil || domain.ValidateLanguage("language", k.Language) != nil {
			continue
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func keysToIDs(resolved map[domain.WordKey]*domain.Word, keys []domain.WordKey) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, resolved[k].ID)
	}
	return ids
}

// newTexts returns texts not yet present on the word, first occurrence wins,
// empty strings dropped.
func newTexts(texts []string, existing map[string]bool) []string {
	out := make([]string, 0, len(texts))
	seen := make(map[string]bool, len(texts))
	for _, t := range texts {
		if t == "" || seen[t] || existing[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func textSet(items []domain.Definition) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item.Text] = true
	}
	return set
}

func textSetExamples(items []domain.Example) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item.Text] = true
	}
	return set
}
