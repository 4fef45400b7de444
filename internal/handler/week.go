package handler

import (
	"net/http"
	"strconv"

	"github.com/hermitcove/hermitcove/internal/course"
	"github.com/hermitcove/hermitcove/internal/service"
)

type WeekHandler struct {
	weekService *service.WeekService
	catalog     *course.Catalog
}

func NewWeekHandler(weekService *service.WeekService, catalog *course.Catalog) *WeekHandler {
	return &WeekHandler{
		weekService: weekService,
		catalog:     catalog,
	}
}

// Info serves the curriculum metadata for one week: title, description, theme.
func (h *WeekHandler) Info(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week number")
		return
	}

	info, ok := h.catalog.Week(week)
	if !ok {
		writeError(w, http.StatusNotFound, "week not found")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func (h *WeekHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Week       int     `json:"week"`
		Reflection *string `json:"reflection"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	completion, err := h.weekService.CompleteWeek(r.PathValue("userId"), req.Week, req.Reflection)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, completion)
}

func (h *WeekHandler) Completion(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week number")
		return
	}

	completion, err := h.weekService.Completion(r.PathValue("userId"), week)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, completion)
}
