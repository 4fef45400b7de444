package routes

import (
	"net/http"

	"github.com/hermitcove/hermitcove/internal/app"
	"github.com/hermitcove/hermitcove/internal/handler"
	"github.com/hermitcove/hermitcove/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	user := handler.NewUserHandler(app.UserService)
	suggestion := handler.NewSuggestionHandler(app.SuggestionService)
	reflection := handler.NewReflectionHandler(app.ReflectionService)
	journal := handler.NewJournalHandler(app.JournalService)
	week := handler.NewWeekHandler(app.WeekService, app.Catalog)
	feedback := handler.NewFeedbackHandler(app.FeedbackService)
	admin := handler.NewAdminHandler(app.StatsService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/health", health.Health)

	// Users
	mux.HandleFunc("POST /api/users", user.Create)
	mux.HandleFunc("GET /api/users/{id}", user.ByID)
	mux.HandleFunc("PATCH /api/users/{id}", user.Update)

	// Curriculum
	mux.HandleFunc("GET /api/suggestions", suggestion.List)
	mux.HandleFunc("GET /api/suggestions/week/{week}/day/{day}", suggestion.ByWeekDay)

	// Reflections & progress
	mux.HandleFunc("POST /api/reflections", reflection.Submit)
	mux.HandleFunc("GET /api/users/{userId}/reflections", reflection.ListByUser)
	mux.HandleFunc("GET /api/reflections/{userId}/{suggestionId}", reflection.ByUserSuggestion)
	mux.HandleFunc("POST /api/users/{userId}/complete-suggestion", reflection.CompleteSuggestion)

	// Journal
	mux.HandleFunc("POST /api/journal", journal.Create)
	mux.HandleFunc("GET /api/users/{userId}/journal", journal.ListByUser)

	// Weekly milestones
	mux.HandleFunc("GET /api/weeks/{week}", week.Info)
	mux.HandleFunc("POST /api/users/{userId}/complete-week", week.Complete)
	mux.HandleFunc("GET /api/users/{userId}/weeks/{week}/completion", week.Completion)

	// Feedback (rate limited)
	rateLimiter := middleware.RateLimitFeedback()
	mux.HandleFunc("POST /api/feedback", rateLimiter(feedback.Submit))

	// ============================================================================
	// ADMIN ROUTES (shared secret)
	// ============================================================================

	requireAdmin := middleware.RequireAdmin(app.Cfg.AdminToken)
	mux.HandleFunc("GET /api/admin/stats", requireAdmin(admin.Stats))
	mux.HandleFunc("GET /api/admin/feedback", requireAdmin(feedback.List))

	return middleware.Chain(mux,
		middleware.RequestLogging,
	)
}
