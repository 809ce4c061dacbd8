package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gtservice/internal/domain"
)

func (h *WordsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrFetch):
		h.log.WarnContext(r.Context(), "provider failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "translation provider unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
