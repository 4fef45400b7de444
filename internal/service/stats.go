package service

import (
	"github.com/hermitcove/hermitcove/internal/repository"
)

// Stats are the aggregate counts behind the admin dashboard.
type Stats struct {
	Users                int `json:"users"`
	CompletedCourses     int `json:"completedCourses"`
	Reflections          int `json:"reflections"`
	CompletedReflections int `json:"completedReflections"`
	JournalEntries       int `json:"journalEntries"`
	WeeklyCompletions    int `json:"weeklyCompletions"`
	Feedback             int `json:"feedback"`
}

type StatsService struct {
	userRepo       repository.UserRepository
	reflectionRepo repository.ReflectionRepository
	journalRepo    repository.JournalRepository
	weeklyRepo     repository.WeeklyCompletionRepository
	feedbackRepo   repository.FeedbackRepository
}

func NewStatsService(
	userRepo repository.UserRepository,
	reflectionRepo repository.ReflectionRepository,
	journalRepo repository.JournalRepository,
	weeklyRepo repository.WeeklyCompletionRepository,
	feedbackRepo repository.FeedbackRepository,
) *StatsService {
	return &StatsService{
		userRepo:       userRepo,
		reflectionRepo: reflectionRepo,
		journalRepo:    journalRepo,
		weeklyRepo:     weeklyRepo,
		feedbackRepo:   feedbackRepo,
	}
}

func (s *StatsService) Stats() (*Stats, error) {
	stats := &Stats{}
	var err error

	stats.Users, err = s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	stats.CompletedCourses, err = s.userRepo.CountCourseComplete()
	if err != nil {
		return nil, err
	}
	stats.Reflections, err = s.reflectionRepo.Count()
	if err != nil {
		return nil, err
	}
	stats.CompletedReflections, err = s.reflectionRepo.CountCompleted()
	if err != nil {
		return nil, err
	}
	stats.JournalEntries, err = s.journalRepo.Count()
	if err != nil {
		return nil, err
	}
	stats.WeeklyCompletions, err = s.weeklyRepo.Count()
	if err != nil {
		return nil, err
	}
	stats.Feedback, err = s.feedbackRepo.Count()
	if err != nil {
		return nil, err
	}

	return stats, nil
}
