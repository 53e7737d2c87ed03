package handler

import (
	"log/slog"
	"net/http"

	"github.com/DragunWF/BasaBuddy-sub000/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.Profile())
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		Bio           string `json:"bio"`
		FavoriteGenre string `json:"favoriteGenre"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.Update(req.Name, req.Bio, req.FavoriteGenre)
	if err != nil {
		slog.Error("failed to update profile", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	err := h.profileService.Reset()
	if err != nil {
		slog.Error("failed to reset profile", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to reset profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
