package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/config"
	"github.com/hermitcove/hermitcove/internal/course"
	"github.com/hermitcove/hermitcove/internal/db"
	"github.com/hermitcove/hermitcove/internal/encouragement"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	Catalog           *course.Catalog
	UserService       *service.UserService
	SuggestionService *service.SuggestionService
	ReflectionService *service.ReflectionService
	JournalService    *service.JournalService
	WeekService       *service.WeekService
	FeedbackService   *service.FeedbackService
	StatsService      *service.StatsService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	suggestionRepository := repository.NewSuggestionRepository(database)
	reflectionRepository := repository.NewReflectionRepository(database)
	journalRepository := repository.NewJournalRepository(database)
	weeklyCompletionRepository := repository.NewWeeklyCompletionRepository(database)
	feedbackRepository := repository.NewFeedbackRepository(database)

	// Encouragement generation: optional, everything degrades to the
	// static fallback pool when no API key is configured
	var generator encouragement.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := encouragement.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Warn("failed to initialize encouragement generator, using fallback pool", "error", err)
		} else {
			generator = gemini
		}
	}

	// Services
	catalog := course.NewCatalog()
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.FeedbackEmail,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	userService := service.NewUserService(userRepository)
	suggestionService := service.NewSuggestionService(suggestionRepository, userRepository, catalog)
	reflectionService := service.NewReflectionService(
		reflectionRepository,
		suggestionRepository,
		userRepository,
		generator,
		cfg.EnrichTimeout,
	)
	journalService := service.NewJournalService(
		journalRepository,
		userRepository,
		generator,
		cfg.EnrichTimeout,
	)
	weekService := service.NewWeekService(weeklyCompletionRepository, userRepository)
	feedbackService := service.NewFeedbackService(feedbackRepository, emailService)
	statsService := service.NewStatsService(
		userRepository,
		reflectionRepository,
		journalRepository,
		weeklyCompletionRepository,
		feedbackRepository,
	)

	// Seed the curriculum (no-op when already populated)
	err = suggestionService.Seed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed curriculum: %v", err)
	}

	return &App{
		Cfg:               cfg,
		DB:                database,
		Catalog:           catalog,
		UserService:       userService,
		SuggestionService: suggestionService,
		ReflectionService: reflectionService,
		JournalService:    journalService,
		WeekService:       weekService,
		FeedbackService:   feedbackService,
		StatsService:      statsService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
