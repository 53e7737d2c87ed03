package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

var (
	ErrAchievementNotFound = errors.New("achievement not found")
)

// AchievementService owns the achievement catalog. It is purely
// reactive: a counter-changing action reports its new count and the
// service flips every matching not-yet-completed entry whose threshold
// the count reached.
type AchievementService struct {
	store storage.Store
}

func NewAchievementService(store storage.Store) *AchievementService {
	return &AchievementService{store: store}
}

// Achievements returns the full catalog in seed order, seeding it on
// first use.
func (s *AchievementService) Achievements() []model.Achievement {
	return s.catalog()
}

// CheckAndUnlock re-evaluates the catalog for one trigger kind against
// its new count and returns the newly completed entries in catalog
// order. Entries for other kinds are left untouched; completed entries
// never re-evaluate.
func (s *AchievementService) CheckAndUnlock(kind model.TriggerKind, count int) ([]model.Achievement, error) {
	catalog := s.catalog()

	var unlocked []model.Achievement
	for i := range catalog {
		entry := &catalog[i]
		if entry.Completed || entry.Trigger.Kind != kind {
			continue
		}
		if count >= entry.Trigger.Count {
			entry.Completed = true
			unlocked = append(unlocked, *entry)
		}
	}

	if len(unlocked) == 0 {
		return nil, nil
	}

	err := s.store.Set(storage.KeyAchievements, catalog)
	if err != nil {
		// The flipped entries are still reported; persistence catches
		// up on the next successful write.
		slog.Error("failed to save achievement catalog", "error", err)
		return unlocked, fmt.Errorf("failed to save achievements: %w", err)
	}

	return unlocked, nil
}

// Complete marks a single achievement by id, for flows that grant an
// achievement directly rather than through a counter.
func (s *AchievementService) Complete(id string) (*model.Achievement, error) {
	catalog := s.catalog()

	for i := range catalog {
		if catalog[i].ID != id {
			continue
		}
		if !catalog[i].Completed {
			catalog[i].Completed = true
			err := s.store.Set(storage.KeyAchievements, catalog)
			if err != nil {
				return nil, fmt.Errorf("failed to save achievements: %w", err)
			}
		}
		return &catalog[i], nil
	}

	return nil, ErrAchievementNotFound
}

// Reset replaces the catalog with the seed, relocking everything.
func (s *AchievementService) Reset() error {
	err := s.store.Set(storage.KeyAchievements, SeedCatalog())
	if err != nil {
		return fmt.Errorf("failed to reset achievements: %w", err)
	}
	return nil
}

func (s *AchievementService) catalog() []model.Achievement {
	var catalog []model.Achievement
	ok, err := s.store.Get(storage.KeyAchievements, &catalog)
	if err != nil {
		// Do not reseed here: a transient read failure must not wipe
		// earned achievements.
		slog.Error("failed to load achievement catalog", "error", err)
		return nil
	}
	if !ok {
		catalog = SeedCatalog()
		err = s.store.Set(storage.KeyAchievements, catalog)
		if err != nil {
			slog.Error("failed to seed achievement catalog", "error", err)
		}
	}
	return catalog
}
