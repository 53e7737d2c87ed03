package validation

import (
	"errors"

	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
)

// ClampGoalMinutes bounds a requested daily goal to the allowed range.
// The clamp lives at the call site; the tracker itself accepts any
// integer for backward compatibility.
func ClampGoalMinutes(minutes int) int {
	if minutes < model.GoalMinMinutes {
		return model.GoalMinMinutes
	}
	if minutes > model.GoalMaxMinutes {
		return model.GoalMaxMinutes
	}
	return minutes
}

// ValidateSessionMinutes validates session input
func ValidateSessionMinutes(minutes int) error {
	if minutes < 0 {
		return errors.New("minutes must not be negative")
	}
	return nil
}
