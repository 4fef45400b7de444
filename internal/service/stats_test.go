package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermitcove/hermitcove/internal/course"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/progress"
	"github.com/hermitcove/hermitcove/internal/repository"
)

func TestStatsCounts(t *testing.T) {
	users := newFakeUserRepo()
	reflections := newFakeReflectionRepo()
	journals := newFakeJournalRepo()
	weekly := newFakeWeeklyRepo()
	feedback := newFakeFeedbackRepo()
	svc := NewStatsService(users, reflections, journals, weekly, feedback)

	newTestUser(users, 6, 7, 42)
	users.users["u2"] = model.User{ID: "u2", Name: "Ben", CurrentWeek: 1, CurrentSuggestion: 3, CompletedSuggestions: 2}

	now := time.Now()
	require.NoError(t, reflections.Upsert(&model.Reflection{ID: "r1", UserID: "u1", SuggestionID: "s1-1", Reflection: "done", Completed: true, CreatedAt: now}))
	require.NoError(t, reflections.Upsert(&model.Reflection{ID: "r2", UserID: "u2", SuggestionID: "s1-1", Reflection: "drafted", CreatedAt: now}))
	require.NoError(t, journals.Create(&model.JournalEntry{ID: "j1", UserID: "u2", Content: "notes", CreatedAt: now}))
	require.NoError(t, weekly.Create(&model.WeeklyCompletion{ID: "w1", UserID: "u1", Week: 1, CompletedAt: now}))
	require.NoError(t, feedback.Create(&model.Feedback{ID: "f1", Message: "hi", CreatedAt: now}))

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Equal(t, 2, stats.Reflections)
	assert.Equal(t, 1, stats.CompletedReflections)
	assert.Equal(t, 1, stats.JournalEntries)
	assert.Equal(t, 1, stats.WeeklyCompletions)
	assert.Equal(t, 1, stats.Feedback)
}

func TestSuggestionByWeekDayOutOfGrid(t *testing.T) {
	svc := NewSuggestionService(newFakeSuggestionRepo(), newFakeUserRepo(), course.NewCatalog())

	for _, wd := range [][2]int{{0, 1}, {7, 1}, {3, 0}, {3, 8}} {
		_, err := svc.ByWeekDay(wd[0], wd[1])
		assert.Error(t, err, "week %d day %d", wd[0], wd[1])
	}

	s, err := svc.ByWeekDay(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Week)
	assert.Equal(t, 5, s.Day)
}

func TestSuggestionStateFor(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewSuggestionService(newFakeSuggestionRepo(), users, course.NewCatalog())
	newTestUser(users, 2, 3, 9)

	tests := []struct {
		week, day int
		want      progress.State
	}{
		{1, 7, progress.StateCompleted},
		{2, 2, progress.StateCompleted},
		{2, 3, progress.StateCurrent},
		{2, 4, progress.StateLocked},
		{6, 7, progress.StateLocked},
	}
	for _, tt := range tests {
		state, err := svc.StateFor("u1", tt.week, tt.day)
		require.NoError(t, err, "week %d day %d", tt.week, tt.day)
		assert.Equal(t, tt.want, state, "week %d day %d", tt.week, tt.day)
	}

	_, err := svc.StateFor("nobody", 1, 1)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
