package service

import (
	"fmt"
	"log/slog"

	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

type ProfileService struct {
	store        storage.Store
	achievements *AchievementService
}

func NewProfileService(store storage.Store, achievements *AchievementService) *ProfileService {
	return &ProfileService{
		store:        store,
		achievements: achievements,
	}
}

func (s *ProfileService) Profile() model.Profile {
	var profile model.Profile
	_, err := s.store.Get(storage.KeyProfile, &profile)
	if err != nil {
		slog.Error("failed to load profile", "error", err)
	}
	return profile
}

// Update replaces the descriptive profile fields, preserving the
// profile-scoped daily goal.
func (s *ProfileService) Update(name, bio, favoriteGenre string) (model.Profile, error) {
	profile := s.Profile()
	profile.Name = name
	profile.Bio = bio
	profile.FavoriteGenre = favoriteGenre

	err := s.store.Set(storage.KeyProfile, profile)
	if err != nil {
		return profile, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// Reset wipes the profile, the session log, streak state, and every
// library counter, then reseeds the achievement catalog.
func (s *ProfileService) Reset() error {
	resets := []struct {
		key   string
		value any
	}{
		{storage.KeyProfile, model.Profile{}},
		{storage.KeySessions, []model.ReadingSession{}},
		{storage.KeyStreak, model.StreakState{}},
		{storage.KeyLastReadDate, ""},
		{storage.KeyGoal, model.GoalDefaultMinutes},
		{storage.KeyLikedBooks, []string{}},
		{storage.KeyFinished, []string{}},
		{storage.KeyCollections, []model.Collection{}},
		{storage.KeyMessageCount, 0},
	}

	for _, r := range resets {
		err := s.store.Set(r.key, r.value)
		if err != nil {
			return fmt.Errorf("failed to reset %q: %w", r.key, err)
		}
	}

	return s.achievements.Reset()
}
