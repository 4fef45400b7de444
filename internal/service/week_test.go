package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/validation"
)

func newWeekService() (*WeekService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewWeekService(newFakeWeeklyRepo(), users), users
}

func TestCompleteWeekRejectsInvalidWeek(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 1, 1, 7)

	for _, week := range []int{0, 7, -1} {
		_, err := svc.CompleteWeek("u1", week, nil)

		var verr *validation.Error
		assert.ErrorAs(t, err, &verr, "week %d", week)
	}
}

func TestCompleteWeekBeforeAllExercisesDone(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 1, 7, 6)

	_, err := svc.CompleteWeek("u1", 1, nil)
	assert.ErrorIs(t, err, ErrWeekNotComplete)
}

func TestCompleteWeekRecordsMilestone(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 2, 1, 7)

	reflection := "  the hardest week of my life  "
	c, err := svc.CompleteWeek("u1", 1, &reflection)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Week)
	require.NotNil(t, c.Reflection)
	assert.Equal(t, "the hardest week of my life", *c.Reflection)
	assert.False(t, c.CompletedAt.IsZero())

	got, err := svc.Completion("u1", 1)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCompleteWeekBlankReflectionDropped(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 2, 1, 7)

	blank := "   "
	c, err := svc.CompleteWeek("u1", 1, &blank)
	require.NoError(t, err)
	assert.Nil(t, c.Reflection)
}

func TestCompleteWeekOnlyOnce(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 3, 1, 14)

	_, err := svc.CompleteWeek("u1", 1, nil)
	require.NoError(t, err)

	_, err = svc.CompleteWeek("u1", 1, nil)
	assert.ErrorIs(t, err, repository.ErrDuplicateCompletion)
}

func TestCompleteEarlierWeeksStillAllowed(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 4, 3, 23)

	// 23 exercises done covers weeks 1 through 3.
	for week := 1; week <= 3; week++ {
		_, err := svc.CompleteWeek("u1", week, nil)
		require.NoError(t, err, "week %d", week)
	}

	_, err := svc.CompleteWeek("u1", 4, nil)
	assert.ErrorIs(t, err, ErrWeekNotComplete)
}

func TestCompletionNotFound(t *testing.T) {
	svc, users := newWeekService()
	newTestUser(users, 1, 1, 0)

	_, err := svc.Completion("u1", 2)
	assert.ErrorIs(t, err, repository.ErrCompletionNotFound)

	_, err = svc.Completion("u1", 99)
	assert.ErrorIs(t, err, repository.ErrCompletionNotFound)
}
