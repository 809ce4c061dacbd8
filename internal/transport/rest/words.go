// Package rest serves the JSON HTTP API: translation lookup, listing,
// deletion, and health probes.
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/gtservice/internal/domain"
)

// translationService defines the minimal interface needed by WordsHandler.
type translationService interface {
	GetOrFetch(ctx context.Context, word, sourceLang, targetLang string) (*domain.Word, error)
	Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	Delete(ctx context.Context, word, language string) (bool, error)
}

// WordsHandler serves the translations REST endpoints.
type WordsHandler struct {
	svc translationService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc translationService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

// GetTranslation handles GET /translations/{word}. It serves the cached word
// when fresh and fetches from the external provider otherwise.
func (h *WordsHandler) GetTranslation(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	source := r.URL.Query().Get("source_language")
	target := r.URL.Query().Get("translation_language")

	result, err := h.svc.GetOrFetch(r.Context(), word, source, target)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(result))
}

// ListTranslations handles GET /translations with optional word_part and
// language filters and page/page_size pagination.
func (h *WordsHandler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	words, total, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(filter, total, words))
}

// DeleteTranslation handles DELETE /translations/{language}/{word}.
// Deleting an absent or already-deleted word is not an error.
func (h *WordsHandler) DeleteTranslation(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	language := r.PathValue("language")

	deleted, err := h.svc.Delete(r.Context(), word, language)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"status": deleted})
}

// parseFilter reads the listing query parameters. Malformed pagination
// numbers are a client error; out-of-range values are clamped by the service.
func parseFilter(w http.ResponseWriter, r *http.Request) (domain.WordFilter, bool) {
	var filter domain.WordFilter

	q := r.URL.Query()
	if part := q.Get("word_part"); part != "" {
		filter.WordPart = &part
	}
	if lang := q.Get("language"); lang != "" {
		filter.Language = &lang
	}

	for param, dst := range map[string]*int{"page": &filter.Page, "page_size": &filter.PageSize} {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, param+" must be an integer")
			return domain.WordFilter{}, false
		}
		*dst = n
	}

	return filter, true
}
