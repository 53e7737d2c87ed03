package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

var (
	ErrNegativeMinutes = errors.New("session minutes must not be negative")
)

const dayFormat = "2006-01-02"

// TrackerService records reading sessions and derives streaks, daily
// totals, and monthly calendars from the session log.
type TrackerService struct {
	store storage.Store
	now   func() time.Time
}

func NewTrackerService(store storage.Store) *TrackerService {
	return &TrackerService{
		store: store,
		now:   time.Now,
	}
}

// RecordSession appends a session for right now and re-evaluates the
// streak. There is no idempotency key: a retried call after a dropped
// acknowledgment appends a second session and double-counts its
// minutes. Known gap, kept as-is.
func (s *TrackerService) RecordSession(minutes int) error {
	if minutes < 0 {
		return ErrNegativeMinutes
	}

	sessions := s.sessions()
	sessions = append(sessions, model.ReadingSession{
		ID:      uuid.New().String(),
		Date:    s.now(),
		Minutes: minutes,
	})

	err := s.store.Set(storage.KeySessions, sessions)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.updateStreak()
	return nil
}

// TodayReadingTime sums the minutes of every session recorded today
// (local calendar day).
func (s *TrackerService) TodayReadingTime() int {
	today := s.now()
	total := 0
	for _, session := range s.sessions() {
		if sameDay(session.Date, today) {
			total += session.Minutes
		}
	}
	return total
}

// DailyGoal resolves the active daily goal in minutes: the
// profile-scoped goal when present and non-zero, then the legacy goal
// key, then the hard default.
func (s *TrackerService) DailyGoal() int {
	var profile model.Profile
	ok, err := s.store.Get(storage.KeyProfile, &profile)
	if err != nil {
		slog.Error("failed to load profile", "error", err)
	} else if ok && profile.DailyGoalMinutes > 0 {
		return profile.DailyGoalMinutes
	}

	var minutes int
	ok, err = s.store.Get(storage.KeyGoal, &minutes)
	if err != nil {
		slog.Error("failed to load daily goal", "error", err)
	} else if ok {
		return minutes
	}

	return model.GoalDefaultMinutes
}

// SetDailyGoal writes the goal to both the profile and the legacy key
// so older readers keep working. Range clamping is the caller's job.
func (s *TrackerService) SetDailyGoal(minutes int) error {
	var profile model.Profile
	_, err := s.store.Get(storage.KeyProfile, &profile)
	if err != nil {
		slog.Error("failed to load profile", "error", err)
	}
	profile.DailyGoalMinutes = minutes

	err = s.store.Set(storage.KeyProfile, profile)
	if err != nil {
		return fmt.Errorf("failed to save daily goal: %w", err)
	}

	err = s.store.Set(storage.KeyGoal, minutes)
	if err != nil {
		return fmt.Errorf("failed to save legacy daily goal: %w", err)
	}

	return nil
}

// CurrentStreak returns the stored streak, resetting it to 0 first if
// the last goal-met day is more than one calendar day behind today.
func (s *TrackerService) CurrentStreak() int {
	last, ok := s.lastReadDate()
	if ok && daysBetween(last, s.now()) > 1 {
		s.writeStreak(0)
		return 0
	}
	return s.readStreak()
}

// updateStreak runs after every recorded session. It credits today
// once the summed minutes reach the goal; re-entry on an already
// credited day is a no-op.
func (s *TrackerService) updateStreak() {
	if s.TodayReadingTime() < s.DailyGoal() {
		return
	}

	today := s.now()
	last, ok := s.lastReadDate()

	switch {
	case !ok:
		s.writeStreak(1)
	case sameDay(last, today):
		return
	case daysBetween(last, today) == 1:
		s.writeStreak(s.readStreak() + 1)
	default:
		s.writeStreak(1)
	}

	err := s.store.Set(storage.KeyLastReadDate, dateOnly(today).Format(dayFormat))
	if err != nil {
		slog.Error("failed to save last read date", "error", err)
	}
}

// MonthlyReadingDays reduces the session log to per-day totals for the
// given month and classifies each active day against the goal that is
// current now, not the goal that was active back then. Raising the
// goal retroactively downgrades past completed days; kept as-is.
func (s *TrackerService) MonthlyReadingDays(year int, month time.Month) model.MonthlyReadingDays {
	goal := s.DailyGoal()

	totals := map[string]int{}
	for _, session := range s.sessions() {
		y, m, _ := session.Date.Date()
		if y != year || m != month {
			continue
		}
		totals[dateOnly(session.Date).Format(dayFormat)] += session.Minutes
	}

	days := model.MonthlyReadingDays{
		CompletedDates: []string{},
		PartialDates:   []string{},
	}
	for day, minutes := range totals {
		if minutes <= 0 {
			continue
		}
		if minutes >= goal {
			days.CompletedDates = append(days.CompletedDates, day)
		} else {
			days.PartialDates = append(days.PartialDates, day)
		}
	}
	sort.Strings(days.CompletedDates)
	sort.Strings(days.PartialDates)

	return days
}

func (s *TrackerService) sessions() []model.ReadingSession {
	var sessions []model.ReadingSession
	ok, err := s.store.Get(storage.KeySessions, &sessions)
	if err != nil {
		slog.Error("failed to load session log", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return sessions
}

func (s *TrackerService) readStreak() int {
	var state model.StreakState
	ok, err := s.store.Get(storage.KeyStreak, &state)
	if err != nil {
		slog.Error("failed to load streak", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return state.CurrentStreak
}

func (s *TrackerService) writeStreak(streak int) {
	err := s.store.Set(storage.KeyStreak, model.StreakState{CurrentStreak: streak})
	if err != nil {
		slog.Error("failed to save streak", "error", err)
	}
}

func (s *TrackerService) lastReadDate() (time.Time, bool) {
	var raw string
	ok, err := s.store.Get(storage.KeyLastReadDate, &raw)
	if err != nil {
		slog.Error("failed to load last read date", "error", err)
		return time.Time{}, false
	}
	if !ok || raw == "" {
		return time.Time{}, false
	}

	last, err := time.ParseInLocation(dayFormat, raw, time.Local)
	if err != nil {
		slog.Error("malformed last read date", "error", err, "value", raw)
		return time.Time{}, false
	}

	return last, true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}

// daysBetween counts whole calendar days from a to b, ignoring time of
// day. Rounding absorbs DST-shortened and -lengthened days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(dateOnly(b).Sub(dateOnly(a)).Hours() / 24))
}
