package model

// Profile is the single reader profile. DailyGoalMinutes is the
// profile-scoped goal; zero means unset, falling back to the legacy
// goal key and then the hard default.
type Profile struct {
	Name             string `json:"name"`
	Bio              string `json:"bio"`
	FavoriteGenre    string `json:"favoriteGenre"`
	DailyGoalMinutes int    `json:"dailyGoalMinutes"`
}
