package app

import (
	"context"

	"stillpoint/config"
	"stillpoint/internal/database"
	"stillpoint/internal/handlers/middleware"
	"stillpoint/internal/jobs"
	"stillpoint/internal/repositories"
	"stillpoint/internal/services"

	authController "stillpoint/internal/controllers/auth"
	catalogController "stillpoint/internal/controllers/catalog"
	libraryController "stillpoint/internal/controllers/library"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TokenService       *services.TokenService
	TransactionService *services.TransactionService
	SchedulerService   *services.SchedulerService

	// Repositories
	Repository repositories.Repository

	// Controllers
	AuthController    authController.AuthControllerInterface
	CatalogController catalogController.CatalogControllerInterface
	LibraryController libraryController.LibraryControllerInterface
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	if err := db.MigrateModels(); err != nil {
		return &App{}, log.Err("failed to migrate models", err)
	}
	if err := db.CreateIndexes(); err != nil {
		return &App{}, log.Err("failed to create indexes", err)
	}

	tokenService, err := services.NewTokenService(config)
	if err != nil {
		return &App{}, log.Err("failed to create token service", err)
	}
	transactionService := services.NewTransactionService(db)
	schedulerService := services.NewSchedulerService()

	repos := repositories.New(db)

	middleware := middleware.New(db, config, tokenService, repos)
	authController := authController.New(repos.User, tokenService)
	catalogController := catalogController.New(db, repos.Session, repos.Teacher)
	libraryController := libraryController.New(
		repos.User,
		repos.Session,
		repos.Favorite,
		repos.Progress,
		transactionService,
	)

	if config.SchedulerEnabled {
		dailyPickJob := jobs.NewDailyPickJob(catalogController, services.Daily)
		if err := schedulerService.AddJob(dailyPickJob); err != nil {
			return &App{}, log.Err("failed to register daily pick job", err)
		}
		log.Info("Registered daily pick job with scheduler")
	}

	app := &App{
		Database:           db,
		Config:             config,
		Middleware:         middleware,
		TokenService:       tokenService,
		TransactionService: transactionService,
		SchedulerService:   schedulerService,
		Repository:         repos,
		AuthController:     authController,
		CatalogController:  catalogController,
		LibraryController:  libraryController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TokenService,
		a.TransactionService,
		a.SchedulerService,
		a.AuthController,
		a.CatalogController,
		a.LibraryController,
		a.Repository.User,
		a.Repository.Teacher,
		a.Repository.Session,
		a.Repository.Favorite,
		a.Repository.Progress,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.SchedulerService != nil {
		if closeErr := a.SchedulerService.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
