package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/gtservice/internal/domain"
)

type wordResponse struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	Language     string    `json:"language"`
	Freshness    string    `json:"freshness"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Translations []wordRef `json:"translations"`
	Synonyms     []wordRef `json:"synonyms"`
	Definitions  []string  `json:"definitions"`
	Examples     []string  `json:"examples"`
}

type wordRef struct {
	Word     string `json:"word"`
	Language string `json:"language"`
}

type wordListItem struct {
	ID        string `json:"id"`
	Word      string `json:"word"`
	Language  string `json:"language"`
	Freshness string `json:"freshness"`
}

type listResponse struct {
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Count      int            `json:"count"`
	Results    []wordListItem `json:"results"`
}

func toWordResponse(w *domain.Word) wordResponse {
	resp := wordResponse{
		ID:           w.ID.String(),
		Word:         w.Word,
		Language:     w.Language,
		Freshness:    w.Freshness.String(),
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
		Translations: make([]wordRef, 0, len(w.Translations)),
		Synonyms:     make([]wordRef, 0, len(w.Synonyms)),
		Definitions:  make([]string, 0, len(w.Definitions)),
		Examples:     make([]string, 0, len(w.Examples)),
	}
	for _, t := range w.Translations {
		resp.Translations = append(resp.Translations, wordRef{Word: t.Word, Language: t.Language})
	}
	for _, s := range w.Synonyms {
		resp.Synonyms = append(resp.Synonyms, wordRef{Word: s.Word, Language: s.Language})
	}
	for _, d := range w.Definitions {
		resp.Definitions = append(resp.Definitions, d.Text)
	}
	for _, e := range w.Examples {
		resp.Examples = append(resp.Examples, e.Text)
	}
	return resp
}

func toListResponse(filter domain.WordFilter, total int, words []domain.Word) listResponse {
	filter.Normalize()

	resp := listResponse{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: filter.TotalPages(total),
		Count:      total,
		Results:    make([]wordListItem, 0, len(words)),
	}
	for _, w := range words {
		resp.Results = append(resp.Results, wordListItem{
			ID:        w.ID.String(),
			Word:      w.Word,
			Language:  w.Language,
			Freshness: w.Freshness.String(),
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
