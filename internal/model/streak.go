package model

// StreakState holds the current run of consecutive goal-met days.
// The date the goal was last met is stored under its own key, as a
// YYYY-MM-DD string; currentStreak is 0 whenever that date is unset
// or more than one calendar day in the past.
type StreakState struct {
	CurrentStreak int `json:"currentStreak"`
}
