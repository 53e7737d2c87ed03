package model

const (
	GoalMinMinutes     = 5
	GoalMaxMinutes     = 240
	GoalDefaultMinutes = 30
)
