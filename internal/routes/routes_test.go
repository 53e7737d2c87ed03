package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DragunWF/BasaBuddy-sub000/internal/app"
	"github.com/DragunWF/BasaBuddy-sub000/internal/config"
	"github.com/DragunWF/BasaBuddy-sub000/internal/routes"
	"github.com/DragunWF/BasaBuddy-sub000/internal/service"
	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewMemoryStore()
	achievements := service.NewAchievementService(store)

	a := &app.App{
		Cfg:                &config.Config{AppEnv: "development"},
		Store:              store,
		TrackerService:     service.NewTrackerService(store),
		AchievementService: achievements,
		LibraryService:     service.NewLibraryService(store, achievements),
		ProfileService:     service.NewProfileService(store, achievements),
	}

	return routes.SetupRoutes(a)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return result
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestRecordSessionAndTodayTotal(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/sessions", map[string]int{"minutes": 25})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, "POST", "/api/sessions", map[string]int{"minutes": 10})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, "GET", "/api/sessions/today", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(35), decodeBody(t, rec)["minutes"])
}

func TestRecordSessionRejectsBadInput(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/sessions", map[string]int{"minutes": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest("POST", "/api/sessions", bytes.NewBufferString("{broken"))
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestGoalClampAndResolution(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/api/goal", nil)
	assert.Equal(t, float64(30), decodeBody(t, rec)["minutes"])

	// Out-of-range values are clamped at this call site
	rec = doJSON(t, h, "PUT", "/api/goal", map[string]int{"minutes": 1000})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(240), decodeBody(t, rec)["minutes"])

	rec = doJSON(t, h, "PUT", "/api/goal", map[string]int{"minutes": 1})
	assert.Equal(t, float64(5), decodeBody(t, rec)["minutes"])

	rec = doJSON(t, h, "GET", "/api/goal", nil)
	assert.Equal(t, float64(5), decodeBody(t, rec)["minutes"])
}

func TestStreakFlowOverHTTP(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/api/streak", nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["currentStreak"])

	doJSON(t, h, "PUT", "/api/goal", map[string]int{"minutes": 20})
	doJSON(t, h, "POST", "/api/sessions", map[string]int{"minutes": 25})

	rec = doJSON(t, h, "GET", "/api/streak", nil)
	assert.Equal(t, float64(1), decodeBody(t, rec)["currentStreak"])
}

func TestCalendarValidation(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/api/calendar/2026/13", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, "GET", "/api/calendar/2026/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "completedDates")
	assert.Contains(t, body, "partialDates")
}

func TestAchievementEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/api/achievements", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	achievements := decodeBody(t, rec)["achievements"].([]any)
	assert.Len(t, achievements, 23)

	rec = doJSON(t, h, "POST", "/api/achievements/check", map[string]any{
		"trigger": "liked_books_count",
		"count":   5,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	unlocked := decodeBody(t, rec)["unlocked"].([]any)
	assert.Len(t, unlocked, 2)

	rec = doJSON(t, h, "POST", "/api/achievements/check", map[string]any{
		"trigger": "bogus",
		"count":   5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, "POST", "/api/achievements/no-such-id/complete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, "POST", "/api/achievements/bookworm/complete", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["completed"])
}

func TestLibraryEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/books/book-1/like", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	unlocked := decodeBody(t, rec)["unlocked"].([]any)
	require.Len(t, unlocked, 1)

	rec = doJSON(t, h, "GET", "/api/books/liked", nil)
	assert.Equal(t, []any{"book-1"}, decodeBody(t, rec)["bookIds"])

	rec = doJSON(t, h, "DELETE", "/api/books/book-1/like", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, "POST", "/api/books/book-1/finish", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "POST", "/api/collections", map[string]string{"name": "Shelf"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "collection")

	rec = doJSON(t, h, "POST", "/api/collections", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, "POST", "/api/messages/count", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
}

func TestProfileEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "PUT", "/api/profile", map[string]string{
		"name":          "Mara",
		"bio":           "Night reader",
		"favoriteGenre": "Fantasy",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mara", decodeBody(t, rec)["name"])

	rec = doJSON(t, h, "GET", "/api/profile", nil)
	assert.Equal(t, "Mara", decodeBody(t, rec)["name"])

	rec = doJSON(t, h, "POST", "/api/profile/reset", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, "GET", "/api/profile", nil)
	assert.Equal(t, "", decodeBody(t, rec)["name"])
}
