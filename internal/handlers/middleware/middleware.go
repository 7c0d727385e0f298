package middleware

import (
	"stillpoint/config"
	"stillpoint/internal/database"
	"stillpoint/internal/repositories"
	"stillpoint/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB           database.DB
	Config       config.Config
	userRepo     repositories.UserRepository
	tokenService *services.TokenService
	log          logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	tokenService *services.TokenService,
	repos repositories.Repository,
) Middleware {
	return Middleware{
		DB:           db,
		Config:       config,
		userRepo:     repos.User,
		tokenService: tokenService,
		log:          logger.New("middleware"),
	}
}
