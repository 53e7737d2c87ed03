package storage

// Logical keys for everything the reading engine persists. The profile
// goal lives inside the profile record; the bare goal key is the legacy
// location kept for backward compatibility.
const (
	KeyProfile      = "profile"
	KeyGoal         = "goal"
	KeySessions     = "sessions"
	KeyStreak       = "streak"
	KeyLastReadDate = "lastReadDate"
	KeyAchievements = "achievements"
	KeyLikedBooks   = "likedBooks"
	KeyFinished     = "finishedBooks"
	KeyCollections  = "collections"
	KeyMessageCount = "messageCount"
)

// Store is a durable string-keyed get/set of JSON-serializable values.
// Get reports whether the key was present; a missing key leaves dest
// untouched. There is no versioning and no transaction spanning keys:
// read-modify-write sequences are last-writer-wins.
type Store interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
}
