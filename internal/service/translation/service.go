// Package translation implements the translation lookup and caching logic:
// cached reads from the word store and fetch-and-merge against the external
// translation provider.
package translation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/gtservice/internal/domain"
	"github.com/heartmarshall/gtservice/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetFullByKey(ctx context.Context, word, language string) (*domain.Word, error)
	GetByKeys(ctx context.Context, keys []domain.WordKey) ([]domain.Word, error)
	Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	Create(ctx context.Context, w *domain.Word) error
	Update(ctx context.Context, w *domain.Word) error
	SoftDelete(ctx context.Context, word, language string) (bool, error)
	ReplaceTranslations(ctx context.Context, wordID uuid.UUID, targetIDs []uuid.UUID) error
	ReplaceSynonyms(ctx context.Context, wordID uuid.UUID, targetIDs []uuid.UUID) error
	AddDefinitions(ctx context.Context, wordID uuid.UUID, texts []string) error
	AddExamples(ctx context.Context, wordID uuid.UUID, texts []string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type translationFetcher interface {
	Fetch(ctx context.Context, word, sourceLang, targetLang string) (*provider.FetchedTranslation, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the translation business logic.
type Service struct {
	log     *slog.Logger
	words   wordRepo
	tx      txManager
	fetcher translationFetcher
	group   singleflight.Group
}

// NewService creates a new translation service.
func NewService(logger *slog.Logger, words wordRepo, tx txManager, fetcher translationFetcher) *Service {
	return &Service{
		log:     logger.With("service", "translation"),
		words:   words,
		tx:      tx,
		fetcher: fetcher,
	}
}

// validateKey normalizes and validates a (word, language) pair.
func validateKey(word, language string) (string, string, error) {
	normalized := domain.NormalizeWord(word)
	if err := domain.ValidateWord(normalized); err != nil {
		return "", "", err
	}
	lang := domain.NormalizeLanguage(language)
	if err := domain.ValidateLanguage("language", lang); err != nil {
		return "", "", err
	}
	return normalized, lang, nil
}
