package translation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/gtservice/internal/domain"
)

// Get returns the cached word with all relations hydrated. It never contacts
// the external provider; soft-deleted words are reported as absent.
func (s *Service) Get(ctx context.Context, word, language string) (*domain.Word, error) {
	normalized, lang, err := validateKey(word, language)
	if err != nil {
		return nil, err
	}

	w, err := s.words.GetFullByKey(ctx, normalized, lang)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	if w.Deleted {
		return nil, fmt.Errorf("word %q (%s): %w", normalized, lang, domain.ErrNotFound)
	}

	return w, nil
}
