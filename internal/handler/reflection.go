package handler

import (
	"net/http"

	"github.com/hermitcove/hermitcove/internal/service"
)

type ReflectionHandler struct {
	reflectionService *service.ReflectionService
}

func NewReflectionHandler(reflectionService *service.ReflectionService) *ReflectionHandler {
	return &ReflectionHandler{
		reflectionService: reflectionService,
	}
}

func (h *ReflectionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID       string `json:"userId"`
		SuggestionID string `json:"suggestionId"`
		Reflection   string `json:"reflection"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	reflection, err := h.reflectionService.Submit(r.Context(), req.UserID, req.SuggestionID, req.Reflection)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reflection)
}

func (h *ReflectionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	reflections, err := h.reflectionService.ListByUser(r.PathValue("userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reflections)
}

func (h *ReflectionHandler) ByUserSuggestion(w http.ResponseWriter, r *http.Request) {
	reflection, err := h.reflectionService.ByUserSuggestion(r.PathValue("userId"), r.PathValue("suggestionId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reflection)
}

// CompleteSuggestion finalizes the exercise and advances the user's position
// in the course. The response is the updated user so the client can detect
// week and course boundaries from the new completion count.
func (h *ReflectionHandler) CompleteSuggestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SuggestionID string `json:"suggestionId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.reflectionService.Complete(r.Context(), r.PathValue("userId"), req.SuggestionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
