package progress

import (
	"errors"

	"github.com/hermitcove/hermitcove/internal/model"
)

const (
	Weeks            = 6
	DaysPerWeek      = 7
	TotalSuggestions = Weeks * DaysPerWeek
)

var (
	ErrCourseAlreadyCompleted = errors.New("course already completed")
)

// ValidWeek reports whether week is inside the 6-week course grid.
func ValidWeek(week int) bool {
	return week >= 1 && week <= Weeks
}

// ValidDay reports whether day is inside the 7-day week grid.
func ValidDay(day int) bool {
	return day >= 1 && day <= DaysPerWeek
}

// Accessible reports whether the user may view or act on the exercise at
// (week, day): anything in a past week, anything up to and including the
// current frontier day, nothing strictly ahead of it.
func Accessible(u *model.User, week, day int) bool {
	if u.CurrentWeek > week {
		return true
	}
	return u.CurrentWeek == week && u.CurrentSuggestion >= day
}

// Advance applies one completion to the user's cursor. The day counter rolls
// over to day 1 of the next week after day 7; on the final exercise the cursor
// saturates at (6, 7) so every exercise stays reviewable. Completion counts
// past the 42nd are rejected, keeping CompletedSuggestions within [0, 42].
func Advance(u *model.User) error {
	if CourseComplete(u) {
		return ErrCourseAlreadyCompleted
	}

	u.CompletedSuggestions++

	switch {
	case u.CurrentSuggestion < DaysPerWeek:
		u.CurrentSuggestion++
	case u.CurrentWeek < Weeks:
		u.CurrentWeek++
		u.CurrentSuggestion = 1
	}
	// week 6, day 7: terminal, cursor stays put

	return nil
}

// WeekComplete reports whether all 7 exercises of week are done. Derived from
// the completion count, never from the cursor, which saturates at the end of
// the course.
func WeekComplete(u *model.User, week int) bool {
	return u.CompletedSuggestions >= week*DaysPerWeek
}

// CourseComplete reports whether all 42 exercises are done.
func CourseComplete(u *model.User) bool {
	return u.CompletedSuggestions >= TotalSuggestions
}
