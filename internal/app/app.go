package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/DragunWF/BasaBuddy-sub000/internal/config"
	"github.com/DragunWF/BasaBuddy-sub000/internal/db"
	"github.com/DragunWF/BasaBuddy-sub000/internal/service"
	"github.com/DragunWF/BasaBuddy-sub000/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	Store              storage.Store
	TrackerService     *service.TrackerService
	AchievementService *service.AchievementService
	LibraryService     *service.LibraryService
	ProfileService     *service.ProfileService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Store adapter
	store := storage.NewSQLStore(database)

	// Services
	trackerService := service.NewTrackerService(store)
	achievementService := service.NewAchievementService(store)
	libraryService := service.NewLibraryService(store, achievementService)
	profileService := service.NewProfileService(store, achievementService)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		Store:              store,
		TrackerService:     trackerService,
		AchievementService: achievementService,
		LibraryService:     libraryService,
		ProfileService:     profileService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
