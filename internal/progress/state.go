package progress

import (
	"github.com/hermitcove/hermitcove/internal/model"
)

type State string

const (
	StateLocked    State = "locked"
	StateCurrent   State = "current"
	StateCompleted State = "completed"
)

// StateOf derives the display state of the exercise at (week, day) for the
// given user. Exercises behind the frontier are completed, the frontier itself
// is current, everything ahead is locked. Once the course is complete there is
// no frontier left and every exercise reads as completed.
func StateOf(u *model.User, week, day int) State {
	if CourseComplete(u) {
		return StateCompleted
	}

	pos := (week-1)*DaysPerWeek + day
	frontier := (u.CurrentWeek-1)*DaysPerWeek + u.CurrentSuggestion

	switch {
	case pos < frontier:
		return StateCompleted
	case pos == frontier:
		return StateCurrent
	default:
		return StateLocked
	}
}
