package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/DragunWF/BasaBuddy-sub000/internal/service"
	"github.com/DragunWF/BasaBuddy-sub000/internal/validation"
)

type TrackerHandler struct {
	trackerService *service.TrackerService
}

func NewTrackerHandler(trackerService *service.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		trackerService: trackerService,
	}
}

func (h *TrackerHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Minutes int `json:"minutes"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validation.ValidateSessionMinutes(req.Minutes)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.trackerService.RecordSession(req.Minutes)
	if err != nil {
		slog.Error("failed to record session", "error", err, "minutes", req.Minutes)
		respondError(w, http.StatusInternalServerError, "failed to record session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrackerHandler) TodayReadingTime(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{
		"minutes": h.trackerService.TodayReadingTime(),
	})
}

func (h *TrackerHandler) Streak(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{
		"currentStreak": h.trackerService.CurrentStreak(),
	})
}

func (h *TrackerHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}

	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		respondError(w, http.StatusBadRequest, "invalid month")
		return
	}

	respondJSON(w, http.StatusOK, h.trackerService.MonthlyReadingDays(year, time.Month(month)))
}

func (h *TrackerHandler) Goal(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{
		"minutes": h.trackerService.DailyGoal(),
	})
}

func (h *TrackerHandler) SetGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Minutes int `json:"minutes"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	minutes := validation.ClampGoalMinutes(req.Minutes)

	err = h.trackerService.SetDailyGoal(minutes)
	if err != nil {
		slog.Error("failed to set daily goal", "error", err, "minutes", minutes)
		respondError(w, http.StatusInternalServerError, "failed to save goal")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"minutes": minutes})
}
