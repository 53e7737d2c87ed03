package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DragunWF/BasaBuddy-sub000/internal/service"
)

type LibraryHandler struct {
	libraryService *service.LibraryService
}

func NewLibraryHandler(libraryService *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
	}
}

func (h *LibraryHandler) LikeBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	unlocked, err := h.libraryService.LikeBook(bookID)
	if err != nil {
		slog.Error("failed to like book", "error", err, "book_id", bookID)
		respondError(w, http.StatusInternalServerError, "failed to like book")
		return
	}

	respondJSON(w, http.StatusOK, unlockedResponse(unlocked))
}

func (h *LibraryHandler) UnlikeBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	err := h.libraryService.UnlikeBook(bookID)
	if err != nil {
		slog.Error("failed to unlike book", "error", err, "book_id", bookID)
		respondError(w, http.StatusInternalServerError, "failed to unlike book")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LibraryHandler) LikedBooks(w http.ResponseWriter, r *http.Request) {
	books := h.libraryService.LikedBooks()
	if books == nil {
		books = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"bookIds": books})
}

func (h *LibraryHandler) FinishBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	unlocked, err := h.libraryService.FinishBook(bookID)
	if err != nil {
		slog.Error("failed to finish book", "error", err, "book_id", bookID)
		respondError(w, http.StatusInternalServerError, "failed to finish book")
		return
	}

	respondJSON(w, http.StatusOK, unlockedResponse(unlocked))
}

func (h *LibraryHandler) FinishedBooks(w http.ResponseWriter, r *http.Request) {
	books := h.libraryService.FinishedBooks()
	if books == nil {
		books = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"bookIds": books})
}

func (h *LibraryHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	collection, unlocked, err := h.libraryService.CreateCollection(name)
	if err != nil {
		slog.Error("failed to create collection", "error", err, "name", name)
		respondError(w, http.StatusInternalServerError, "failed to create collection")
		return
	}

	resp := unlockedResponse(unlocked)
	resp["collection"] = collection
	respondJSON(w, http.StatusCreated, resp)
}

func (h *LibraryHandler) Collections(w http.ResponseWriter, r *http.Request) {
	collections := h.libraryService.Collections()
	respondJSON(w, http.StatusOK, map[string]any{"collections": collections})
}

func (h *LibraryHandler) CountMessage(w http.ResponseWriter, r *http.Request) {
	count, unlocked, err := h.libraryService.CountMessage()
	if err != nil {
		slog.Error("failed to count message", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to count message")
		return
	}

	resp := unlockedResponse(unlocked)
	resp["count"] = count
	respondJSON(w, http.StatusOK, resp)
}
