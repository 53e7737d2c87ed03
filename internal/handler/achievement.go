package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
	"github.com/DragunWF/BasaBuddy-sub000/internal/service"
)

type AchievementHandler struct {
	achievementService *service.AchievementService
}

func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"achievements": h.achievementService.Achievements(),
	})
}

// Check lets a collaborator that owns its own counter (the chat
// companion, the catalog client) report a count change directly.
func (h *AchievementHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Trigger model.TriggerKind `json:"trigger"`
		Count   int               `json:"count"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Trigger.Valid() {
		respondError(w, http.StatusBadRequest, "unknown trigger kind")
		return
	}

	unlocked, err := h.achievementService.CheckAndUnlock(req.Trigger, req.Count)
	if err != nil {
		slog.Error("failed to check achievements", "error", err, "trigger", req.Trigger)
		respondError(w, http.StatusInternalServerError, "failed to save achievements")
		return
	}

	respondJSON(w, http.StatusOK, unlockedResponse(unlocked))
}

func (h *AchievementHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	achievement, err := h.achievementService.Complete(id)
	if errors.Is(err, service.ErrAchievementNotFound) {
		respondError(w, http.StatusNotFound, "achievement not found")
		return
	}
	if err != nil {
		slog.Error("failed to complete achievement", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "failed to save achievements")
		return
	}

	respondJSON(w, http.StatusOK, achievement)
}

// unlockedResponse keeps the unlocked list non-null in JSON so clients
// can iterate without a nil check.
func unlockedResponse(unlocked []model.Achievement) map[string]any {
	if unlocked == nil {
		unlocked = []model.Achievement{}
	}
	return map[string]any{"unlocked": unlocked}
}
