package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

func TestProfileUpdatePreservesGoal(t *testing.T) {
	store := storage.NewMemoryStore()
	achievements := NewAchievementService(store)
	profiles := NewProfileService(store, achievements)
	tracker := NewTrackerService(store)

	require.NoError(t, tracker.SetDailyGoal(60))

	profile, err := profiles.Update("Mara", "Night reader", "Fantasy")
	require.NoError(t, err)
	assert.Equal(t, "Mara", profile.Name)
	assert.Equal(t, 60, profile.DailyGoalMinutes)
	assert.Equal(t, 60, tracker.DailyGoal())
}

func TestResetWipesEverything(t *testing.T) {
	store := storage.NewMemoryStore()
	achievements := NewAchievementService(store)
	profiles := NewProfileService(store, achievements)
	library := NewLibraryService(store, achievements)
	tracker := NewTrackerService(store)
	tracker.now = func() time.Time { return day1 }

	require.NoError(t, tracker.SetDailyGoal(20))
	require.NoError(t, tracker.RecordSession(25))
	_, err := library.LikeBook("book-1")
	require.NoError(t, err)
	_, _, err = library.CreateCollection("Shelf")
	require.NoError(t, err)

	require.Equal(t, 1, tracker.CurrentStreak())

	require.NoError(t, profiles.Reset())

	assert.Equal(t, 0, tracker.CurrentStreak())
	assert.Equal(t, 0, tracker.TodayReadingTime())
	assert.Empty(t, library.LikedBooks())
	assert.Empty(t, library.Collections())
	assert.Equal(t, 0, library.MessageCount())
	assert.Zero(t, profiles.Profile())

	for _, entry := range achievements.Achievements() {
		assert.False(t, entry.Completed, entry.ID)
	}
}
