package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredText(t *testing.T) {
	got, err := RequiredText("reflection", "  kept my head up  ", 100)
	require.NoError(t, err)
	assert.Equal(t, "kept my head up", got)

	_, err = RequiredText("reflection", "   ", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	_, err = RequiredText("reflection", strings.Repeat("x", 101), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")
}

func TestValidateWeekDay(t *testing.T) {
	for week := 1; week <= 6; week++ {
		assert.NoError(t, ValidateWeek(week))
	}
	assert.ErrorIs(t, ValidateWeek(0), ErrWeekOutOfRange)
	assert.ErrorIs(t, ValidateWeek(7), ErrWeekOutOfRange)

	for day := 1; day <= 7; day++ {
		assert.NoError(t, ValidateDay(day))
	}
	assert.ErrorIs(t, ValidateDay(0), ErrDayOutOfRange)
	assert.ErrorIs(t, ValidateDay(8), ErrDayOutOfRange)
}

func TestValidateMood(t *testing.T) {
	assert.NoError(t, ValidateMood(nil))

	for _, mood := range []string{"great", "good", "okay", "struggling"} {
		m := mood
		assert.NoError(t, ValidateMood(&m), mood)
	}

	bad := "Great"
	assert.ErrorIs(t, ValidateMood(&bad), ErrUnknownMood, "tags are case-sensitive")
}
