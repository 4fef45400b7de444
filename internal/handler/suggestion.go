package handler

import (
	"net/http"
	"strconv"

	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/progress"
	"github.com/hermitcove/hermitcove/internal/service"
)

type SuggestionHandler struct {
	suggestionService *service.SuggestionService
}

func NewSuggestionHandler(suggestionService *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
	}
}

func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.suggestionService.All()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

func (h *SuggestionHandler) ByWeekDay(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week number")
		return
	}
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid day number")
		return
	}

	suggestion, err := h.suggestionService.ByWeekDay(week, day)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// With a userId the response also says how the exercise presents to that
	// user: locked, current, or completed.
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusOK, suggestion)
		return
	}

	state, err := h.suggestionService.StateFor(userID, week, day)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionDetailResponse{
		Suggestion: suggestion,
		State:      state,
	})
}

type suggestionDetailResponse struct {
	*model.Suggestion
	State progress.State `json:"state"`
}
