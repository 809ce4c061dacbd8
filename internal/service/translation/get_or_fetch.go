package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gtservice/internal/domain"
)

// GetOrFetch returns a fresh cached word or fetches translation data from the
// external provider and merges it into the store. Concurrent calls for the
// same (word, source language) key collapse into a single fetch-and-merge;
// the losers of the race receive the winner's result.
func (s *Service) GetOrFetch(ctx context.Context, word, sourceLang, targetLang string) (*domain.Word, error) {
	normalized := domain.NormalizeWord(word)
	if err := domain.ValidateWord(normalized); err != nil {
		return nil, err
	}
	src := domain.NormalizeLanguage(sourceLang)
	if err := domain.ValidateLanguage("source_language", src); err != nil {
		return nil, err
	}
	tgt := domain.NormalizeLanguage(targetLang)
	if err := domain.ValidateLanguage("translation_language", tgt); err != nil {
		return nil, err
	}

	// 1. Fresh live cache hit short-circuits the provider entirely.
	existing, err := s.words.GetFullByKey(ctx, normalized, src)
	if err == nil && !existing.Deleted && existing.Freshness == domain.FreshnessFresh {
		return existing, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get word: %w", err)
	}

	// 2. Stale, deleted, or missing: fetch and merge, one flight per key.
	v, err, _ := s.group.Do(src+"/"+normalized, func() (any, error) {
		return s.fetchAndMerge(ctx, normalized, src, tgt)
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Word), nil
}

// fetchAndMerge calls the provider outside any transaction, reconciles the
// result into the word graph in a single transaction, and re-reads the merged
// word after commit.
func (s *Service) fetchAndMerge(ctx context.Context, word, sourceLang, targetLang string) (*domain.Word, error) {
	fetched, err := s.fetcher.Fetch(ctx, word, sourceLang, targetLang)
	if err != nil {
		return nil, fmt.Errorf("fetch translation: %w", err)
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.reconcile(txCtx, word, sourceLang, fetched)
	})
	if txErr != nil {
		// Concurrent merge won the unique index race: its committed row is
		// the result this caller asked for.
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			winner, readErr := s.words.GetFullByKey(ctx, word, sourceLang)
			if readErr != nil {
				return nil, fmt.Errorf("get word after conflict: %w", readErr)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("merge translation: %w", txErr)
	}

	merged, err := s.words.GetFullByKey(ctx, word, sourceLang)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("word %q (%s) absent after merge commit: %w",
				word, sourceLang, domain.ErrIntegrity)
		}
		return nil, fmt.Errorf("get word after merge: %w", err)
	}

	s.log.InfoContext(ctx, "translation merged",
		slog.String("word", word),
		slog.String("source", sourceLang),
		slog.String("target", targetLang),
		slog.Int("translations", len(merged.Translations)),
		slog.Int("synonyms", len(merged.Synonyms)),
	)

	return merged, nil
}
