package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hermitcove/hermitcove/internal/course"
	"github.com/hermitcove/hermitcove/internal/encouragement"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/repository"
)

// In-memory repository fakes. Values are stored by copy so a service that
// forgets to call Update cannot accidentally pass a test.

type fakeUserRepo struct {
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) ByID(id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := u
	return &out, nil
}

func (f *fakeUserRepo) Update(user *model.User) error {
	_, ok := f.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.LastActiveAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) TouchLastActive(id string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.LastActiveAt = time.Now()
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Count() (int, error) {
	return len(f.users), nil
}

func (f *fakeUserRepo) CountCourseComplete() (int, error) {
	count := 0
	for _, u := range f.users {
		if u.CompletedSuggestions >= 42 {
			count++
		}
	}
	return count, nil
}

type fakeSuggestionRepo struct {
	suggestions []model.Suggestion
}

// newFakeSuggestionRepo is pre-seeded with the full curriculum, ids "s<week>-<day>".
func newFakeSuggestionRepo() *fakeSuggestionRepo {
	f := &fakeSuggestionRepo{}
	for _, e := range course.NewCatalog().Exercises() {
		f.suggestions = append(f.suggestions, model.Suggestion{
			ID:          fmt.Sprintf("s%d-%d", e.Week, e.Day),
			Week:        e.Week,
			Day:         e.Day,
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
		})
	}
	return f
}

func (f *fakeSuggestionRepo) SeedAll(suggestions []*model.Suggestion) error {
	for _, s := range suggestions {
		f.suggestions = append(f.suggestions, *s)
	}
	return nil
}

func (f *fakeSuggestionRepo) ByID(id string) (*model.Suggestion, error) {
	for _, s := range f.suggestions {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrSuggestionNotFound
}

func (f *fakeSuggestionRepo) ByWeekDay(week, day int) (*model.Suggestion, error) {
	for _, s := range f.suggestions {
		if s.Week == week && s.Day == day {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrSuggestionNotFound
}

func (f *fakeSuggestionRepo) All() ([]*model.Suggestion, error) {
	out := make([]*model.Suggestion, 0, len(f.suggestions))
	for i := range f.suggestions {
		s := f.suggestions[i]
		out = append(out, &s)
	}
	return out, nil
}

func (f *fakeSuggestionRepo) Count() (int, error) {
	return len(f.suggestions), nil
}

type fakeReflectionRepo struct {
	rows map[string]model.Reflection // keyed by user|suggestion
}

func newFakeReflectionRepo() *fakeReflectionRepo {
	return &fakeReflectionRepo{rows: make(map[string]model.Reflection)}
}

func reflectionKey(userID, suggestionID string) string {
	return userID + "|" + suggestionID
}

func (f *fakeReflectionRepo) Upsert(reflection *model.Reflection) error {
	key := reflectionKey(reflection.UserID, reflection.SuggestionID)
	existing, ok := f.rows[key]
	if ok {
		existing.Reflection = reflection.Reflection
		existing.AIResponse = nil
		existing.Sentiment = nil
		existing.CreatedAt = reflection.CreatedAt
		f.rows[key] = existing
		*reflection = existing
		return nil
	}
	f.rows[key] = *reflection
	return nil
}

func (f *fakeReflectionRepo) ByUserSuggestion(userID, suggestionID string) (*model.Reflection, error) {
	r, ok := f.rows[reflectionKey(userID, suggestionID)]
	if !ok {
		return nil, repository.ErrReflectionNotFound
	}
	out := r
	return &out, nil
}

func (f *fakeReflectionRepo) ByUser(userID string) ([]*model.Reflection, error) {
	var out []*model.Reflection
	for _, r := range f.rows {
		if r.UserID == userID {
			row := r
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeReflectionRepo) SetEnrichment(id, aiResponse, sentiment string) error {
	for key, r := range f.rows {
		if r.ID == id {
			r.AIResponse = &aiResponse
			r.Sentiment = &sentiment
			f.rows[key] = r
			return nil
		}
	}
	return repository.ErrReflectionNotFound
}

func (f *fakeReflectionRepo) SetCompleted(id string) error {
	for key, r := range f.rows {
		if r.ID == id {
			r.Completed = true
			f.rows[key] = r
			return nil
		}
	}
	return repository.ErrReflectionNotFound
}

func (f *fakeReflectionRepo) Count() (int, error) {
	return len(f.rows), nil
}

func (f *fakeReflectionRepo) CountCompleted() (int, error) {
	count := 0
	for _, r := range f.rows {
		if r.Completed {
			count++
		}
	}
	return count, nil
}

type fakeJournalRepo struct {
	entries []model.JournalEntry
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{}
}

func (f *fakeJournalRepo) Create(entry *model.JournalEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJournalRepo) ByUser(userID string) ([]*model.JournalEntry, error) {
	var out []*model.JournalEntry
	for i := range f.entries {
		if f.entries[i].UserID == userID {
			e := f.entries[i]
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeJournalRepo) Count() (int, error) {
	return len(f.entries), nil
}

type fakeWeeklyRepo struct {
	rows map[string]model.WeeklyCompletion
}

func newFakeWeeklyRepo() *fakeWeeklyRepo {
	return &fakeWeeklyRepo{rows: make(map[string]model.WeeklyCompletion)}
}

func weeklyKey(userID string, week int) string {
	return fmt.Sprintf("%s|%d", userID, week)
}

func (f *fakeWeeklyRepo) Create(completion *model.WeeklyCompletion) error {
	key := weeklyKey(completion.UserID, completion.Week)
	_, ok := f.rows[key]
	if ok {
		return repository.ErrDuplicateCompletion
	}
	f.rows[key] = *completion
	return nil
}

func (f *fakeWeeklyRepo) ByUserWeek(userID string, week int) (*model.WeeklyCompletion, error) {
	c, ok := f.rows[weeklyKey(userID, week)]
	if !ok {
		return nil, repository.ErrCompletionNotFound
	}
	out := c
	return &out, nil
}

func (f *fakeWeeklyRepo) Count() (int, error) {
	return len(f.rows), nil
}

type fakeFeedbackRepo struct {
	rows []model.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{}
}

func (f *fakeFeedbackRepo) Create(feedback *model.Feedback) error {
	f.rows = append(f.rows, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) All() ([]*model.Feedback, error) {
	out := make([]*model.Feedback, 0, len(f.rows))
	for i := range f.rows {
		fb := f.rows[i]
		out = append(out, &fb)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) Count() (int, error) {
	return len(f.rows), nil
}

// fakeGenerator scripts the encouragement generator.
type fakeGenerator struct {
	reflection encouragement.Encouragement
	journal    string
	err        error
	calls      int
}

func (g *fakeGenerator) ForReflection(ctx context.Context, reflection, exerciseDescription string) (encouragement.Encouragement, error) {
	g.calls++
	if g.err != nil {
		return encouragement.Encouragement{}, g.err
	}
	return g.reflection, nil
}

func (g *fakeGenerator) ForJournal(ctx context.Context, content, mood string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.journal, nil
}
