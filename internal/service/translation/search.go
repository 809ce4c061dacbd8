package translation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/gtservice/internal/domain"
)

// Search returns a page of live words matching the filter, plus the total
// match count across all pages.
func (s *Service) Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	if filter.WordPart != nil {
		part := domain.NormalizeWord(*filter.WordPart)
		if part == "" {
			filter.WordPart = nil
		} else {
			filter.WordPart = &part
		}
	}
	if filter.Language != nil {
		lang := domain.NormalizeLanguage(*filter.Language)
		if err := domain.ValidateLanguage("language", lang); err != nil {
			return nil, 0, err
		}
		filter.Language = &lang
	}
	filter.Normalize()

	words, total, err := s.words.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("search words: %w", err)
	}

	return words, total, nil
}
