package app

import (
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/logger"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Error.Fatalf("failed to connect to database: %v", err)
	}

	// connection Redis (session store); token auth works without it
	var sessions storage.SessionStore
	redisStore, err := storage.NewRedisSessionStore(cfg)
	if err != nil {
		logger.Warn.Printf("session store unavailable, session auth disabled: %v", err)
	} else {
		sessions = redisStore
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, sessions)

	return db, repo, services
}
