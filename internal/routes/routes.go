package routes

import (
	"net/http"

	"github.com/DragunWF/BasaBuddy-sub000/internal/app"
	"github.com/DragunWF/BasaBuddy-sub000/internal/handler"
	"github.com/DragunWF/BasaBuddy-sub000/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	tracker := handler.NewTrackerHandler(app.TrackerService)
	achievement := handler.NewAchievementHandler(app.AchievementService)
	library := handler.NewLibraryHandler(app.LibraryService)
	profile := handler.NewProfileHandler(app.ProfileService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)

	// Reading sessions and streak
	mux.HandleFunc("POST /api/sessions", tracker.RecordSession)
	mux.HandleFunc("GET /api/sessions/today", tracker.TodayReadingTime)
	mux.HandleFunc("GET /api/streak", tracker.Streak)
	mux.HandleFunc("GET /api/calendar/{year}/{month}", tracker.Calendar)
	mux.HandleFunc("GET /api/goal", tracker.Goal)
	mux.HandleFunc("PUT /api/goal", tracker.SetGoal)

	// Achievements
	mux.HandleFunc("GET /api/achievements", achievement.List)
	mux.HandleFunc("POST /api/achievements/check", achievement.Check)
	mux.HandleFunc("POST /api/achievements/{id}/complete", achievement.Complete)

	// Library counters
	mux.HandleFunc("GET /api/books/liked", library.LikedBooks)
	mux.HandleFunc("GET /api/books/finished", library.FinishedBooks)
	mux.HandleFunc("POST /api/books/{id}/like", library.LikeBook)
	mux.HandleFunc("DELETE /api/books/{id}/like", library.UnlikeBook)
	mux.HandleFunc("POST /api/books/{id}/finish", library.FinishBook)
	mux.HandleFunc("GET /api/collections", library.Collections)
	mux.HandleFunc("POST /api/collections", library.CreateCollection)
	mux.HandleFunc("POST /api/messages/count", library.CountMessage)

	// Profile
	mux.HandleFunc("GET /api/profile", profile.Profile)
	mux.HandleFunc("PUT /api/profile", profile.Update)
	mux.HandleFunc("POST /api/profile/reset", profile.Reset)

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.Recover,
	)
}
