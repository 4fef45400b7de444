package handler

import (
	"net/http"

	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

type journalEntryResponse struct {
	*model.JournalEntry
	AIEncouragement string `json:"aiEncouragement,omitempty"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string  `json:"userId"`
		Content string  `json:"content"`
		Mood    *string `json:"mood"`
		Week    *int    `json:"week"`
		Day     *int    `json:"day"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, message, err := h.journalService.Create(r.Context(), req.UserID, req.Content, req.Mood, req.Week, req.Day)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, journalEntryResponse{
		JournalEntry:    entry,
		AIEncouragement: message,
	})
}

func (h *JournalHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	entries, err := h.journalService.ListByUser(r.PathValue("userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
