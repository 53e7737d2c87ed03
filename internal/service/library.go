package service

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

// LibraryService owns the counters the achievement engine consumes:
// liked books, finished books, collections, and the chat message
// count. Every counter bump reports the new count to the achievement
// service and hands newly unlocked entries back to the caller, which
// owns their presentation.
type LibraryService struct {
	store        storage.Store
	achievements *AchievementService
}

func NewLibraryService(store storage.Store, achievements *AchievementService) *LibraryService {
	return &LibraryService{
		store:        store,
		achievements: achievements,
	}
}

// LikeBook adds a book to the liked list. Liking an already liked book
// is a no-op and triggers no re-evaluation.
func (s *LibraryService) LikeBook(bookID string) ([]model.Achievement, error) {
	liked := s.bookList(storage.KeyLikedBooks)
	if slices.Contains(liked, bookID) {
		return nil, nil
	}

	liked = append(liked, bookID)
	err := s.store.Set(storage.KeyLikedBooks, liked)
	if err != nil {
		return nil, fmt.Errorf("failed to save liked books: %w", err)
	}

	return s.achievements.CheckAndUnlock(model.TriggerLikedBooks, len(liked))
}

// UnlikeBook removes a book from the liked list. Unlocked achievements
// stay unlocked.
func (s *LibraryService) UnlikeBook(bookID string) error {
	liked := s.bookList(storage.KeyLikedBooks)
	next := slices.DeleteFunc(liked, func(id string) bool { return id == bookID })
	if len(next) == len(liked) {
		return nil
	}

	err := s.store.Set(storage.KeyLikedBooks, next)
	if err != nil {
		return fmt.Errorf("failed to save liked books: %w", err)
	}
	return nil
}

func (s *LibraryService) LikedBooks() []string {
	return s.bookList(storage.KeyLikedBooks)
}

// FinishBook adds a book to the finished list. Finishing the same book
// twice does not double-count.
func (s *LibraryService) FinishBook(bookID string) ([]model.Achievement, error) {
	finished := s.bookList(storage.KeyFinished)
	if slices.Contains(finished, bookID) {
		return nil, nil
	}

	finished = append(finished, bookID)
	err := s.store.Set(storage.KeyFinished, finished)
	if err != nil {
		return nil, fmt.Errorf("failed to save finished books: %w", err)
	}

	return s.achievements.CheckAndUnlock(model.TriggerFinishedBooks, len(finished))
}

func (s *LibraryService) FinishedBooks() []string {
	return s.bookList(storage.KeyFinished)
}

func (s *LibraryService) CreateCollection(name string) (*model.Collection, []model.Achievement, error) {
	collections := s.Collections()
	collection := model.Collection{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	collections = append(collections, collection)

	err := s.store.Set(storage.KeyCollections, collections)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save collections: %w", err)
	}

	unlocked, err := s.achievements.CheckAndUnlock(model.TriggerCollections, len(collections))
	return &collection, unlocked, err
}

func (s *LibraryService) Collections() []model.Collection {
	var collections []model.Collection
	ok, err := s.store.Get(storage.KeyCollections, &collections)
	if err != nil {
		slog.Error("failed to load collections", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return collections
}

// CountMessage bumps the chat message counter. No seed achievement
// watches this kind today; the dispatch still runs so a future seed
// entry works without code changes.
func (s *LibraryService) CountMessage() (int, []model.Achievement, error) {
	count := s.MessageCount() + 1

	err := s.store.Set(storage.KeyMessageCount, count)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to save message count: %w", err)
	}

	unlocked, err := s.achievements.CheckAndUnlock(model.TriggerMessages, count)
	return count, unlocked, err
}

func (s *LibraryService) MessageCount() int {
	var count int
	ok, err := s.store.Get(storage.KeyMessageCount, &count)
	if err != nil {
		slog.Error("failed to load message count", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return count
}

func (s *LibraryService) bookList(key string) []string {
	var books []string
	ok, err := s.store.Get(key, &books)
	if err != nil {
		slog.Error("failed to load book list", "error", err, "key", key)
		return nil
	}
	if !ok {
		return nil
	}
	return books
}
