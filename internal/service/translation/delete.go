package translation

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete soft-deletes a word. The word row and its relations stay in the
// store; read paths treat it as absent until a later merge revives it.
// Returns false when the word was already deleted or never existed.
func (s *Service) Delete(ctx context.Context, word, language string) (bool, error) {
	normalized, lang, err := validateKey(word, language)
	if err != nil {
		return false, err
	}

	deleted, err := s.words.SoftDelete(ctx, normalized, lang)
	if err != nil {
		return false, fmt.Errorf("soft delete word: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "word soft-deleted",
			slog.String("word", normalized),
			slog.String("language", lang),
		)
	}

	return deleted, nil
}
