package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hermitcove/hermitcove/internal/progress"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/service"
	"github.com/hermitcove/hermitcove/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is a storage-level failure and logged as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, service.ErrReflectionRequired),
		errors.Is(err, service.ErrWeekNotComplete),
		errors.Is(err, progress.ErrCourseAlreadyCompleted):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSuggestionLocked):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrSuggestionNotFound),
		errors.Is(err, repository.ErrReflectionNotFound),
		errors.Is(err, repository.ErrCompletionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateCompletion):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
