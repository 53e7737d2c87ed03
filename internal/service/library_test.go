package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

func newTestLibrary(t *testing.T) (*LibraryService, *AchievementService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	achievements := NewAchievementService(store)
	return NewLibraryService(store, achievements), achievements, store
}

func TestLikeBookUnlocksFirstFavorite(t *testing.T) {
	library, _, _ := newTestLibrary(t)

	unlocked, err := library.LikeBook("book-1")
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "first-favorite", unlocked[0].ID)
	assert.Equal(t, []string{"book-1"}, library.LikedBooks())
}

func TestLikeBookIsIdempotentPerBook(t *testing.T) {
	library, _, _ := newTestLibrary(t)

	_, err := library.LikeBook("book-1")
	require.NoError(t, err)

	unlocked, err := library.LikeBook("book-1")
	require.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Len(t, library.LikedBooks(), 1)
}

func TestUnlikeKeepsUnlockedAchievements(t *testing.T) {
	library, achievements, _ := newTestLibrary(t)

	_, err := library.LikeBook("book-1")
	require.NoError(t, err)
	require.NoError(t, library.UnlikeBook("book-1"))

	assert.Empty(t, library.LikedBooks())
	for _, entry := range achievements.Achievements() {
		if entry.ID == "first-favorite" {
			assert.True(t, entry.Completed)
		}
	}
}

func TestFinishBookUnlockTiers(t *testing.T) {
	library, _, _ := newTestLibrary(t)

	var lastUnlocked []string
	for i := 0; i < 5; i++ {
		unlocked, err := library.FinishBook(bookID(i))
		require.NoError(t, err)
		for _, entry := range unlocked {
			lastUnlocked = append(lastUnlocked, entry.ID)
		}
	}

	assert.Equal(t, []string{"first-chapter-closed", "page-turner"}, lastUnlocked)
	assert.Len(t, library.FinishedBooks(), 5)

	// Finishing an already finished book changes nothing
	unlocked, err := library.FinishBook(bookID(0))
	require.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Len(t, library.FinishedBooks(), 5)
}

func TestCreateCollectionUnlocksFirstShelf(t *testing.T) {
	library, _, _ := newTestLibrary(t)

	collection, unlocked, err := library.CreateCollection("Sci-Fi Favorites")
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.NotEmpty(t, collection.ID)
	assert.Equal(t, "Sci-Fi Favorites", collection.Name)

	require.Len(t, unlocked, 1)
	assert.Equal(t, "first-shelf", unlocked[0].ID)
	assert.Len(t, library.Collections(), 1)
}

func TestCountMessageHasNoSeedAchievement(t *testing.T) {
	library, _, _ := newTestLibrary(t)

	for i := 0; i < 3; i++ {
		count, unlocked, err := library.CountMessage()
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
		assert.Empty(t, unlocked)
	}

	assert.Equal(t, 3, library.MessageCount())
}

func bookID(i int) string {
	return string(rune('a' + i))
}
