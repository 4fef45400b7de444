package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogContainsFullGrid(t *testing.T) {
	c := NewCatalog()

	exercises := c.Exercises()
	require.Len(t, exercises, 42)

	// Ordered by (week, day), every cell of the 6x7 grid present exactly once
	i := 0
	for week := 1; week <= 6; week++ {
		for day := 1; day <= 7; day++ {
			e := exercises[i]
			assert.Equal(t, week, e.Week)
			assert.Equal(t, day, e.Day)
			assert.NotEmpty(t, e.Title)
			assert.NotEmpty(t, e.Description)
			assert.NotEmpty(t, e.Category)
			i++
		}
	}
}

func TestByWeekDay(t *testing.T) {
	c := NewCatalog()

	e, ok := c.ByWeekDay(1, 1)
	require.True(t, ok)
	assert.Equal(t, "Notice Your Breathing", e.Title)

	e, ok = c.ByWeekDay(6, 7)
	require.True(t, ok)
	assert.Equal(t, "Plan Your Future", e.Title)

	_, ok = c.ByWeekDay(3, 9)
	assert.False(t, ok)
	_, ok = c.ByWeekDay(7, 1)
	assert.False(t, ok)
	_, ok = c.ByWeekDay(0, 0)
	assert.False(t, ok)
}

func TestWeekMetadata(t *testing.T) {
	c := NewCatalog()

	info, ok := c.Week(1)
	require.True(t, ok)
	assert.Equal(t, "Building Awareness", info.Title)

	info, ok = c.Week(6)
	require.True(t, ok)
	assert.Equal(t, "confidence", info.Theme)

	_, ok = c.Week(0)
	assert.False(t, ok)
	_, ok = c.Week(7)
	assert.False(t, ok)
}

func TestExercisesCopyIsIsolated(t *testing.T) {
	c := NewCatalog()

	got := c.Exercises()
	got[0].Title = "mutated"

	again := c.Exercises()
	assert.Equal(t, "Notice Your Breathing", again[0].Title)
}
