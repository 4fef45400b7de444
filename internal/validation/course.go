package validation

import (
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/progress"
)

var (
	ErrWeekOutOfRange = newError("week must be between 1 and 6")
	ErrDayOutOfRange  = newError("day must be between 1 and 7")
	ErrUnknownMood    = newError("mood must be one of: great, good, okay, struggling")
)

func ValidateWeek(week int) error {
	if !progress.ValidWeek(week) {
		return ErrWeekOutOfRange
	}
	return nil
}

func ValidateDay(day int) error {
	if !progress.ValidDay(day) {
		return ErrDayOutOfRange
	}
	return nil
}

// ValidateMood checks an optional mood tag. Nil is allowed; a present value
// must be one of the four defined tags.
func ValidateMood(mood *string) error {
	if mood == nil {
		return nil
	}
	switch *mood {
	case model.MoodGreat, model.MoodGood, model.MoodOkay, model.MoodStruggling:
		return nil
	}
	return ErrUnknownMood
}
