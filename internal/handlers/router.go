package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

// Router registers every route the contract registry declares.
func Router(router fiber.Router, app *app.App) error {
	HealthHandler(router, app.Config)
	NewAuthHandler(*app, router).Register()
	NewSessionHandler(*app, router).Register()
	NewTeacherHandler(*app, router).Register()
	NewFavoriteHandler(*app, router).Register()
	NewProgressHandler(*app, router).Register()
	NewStatsHandler(*app, router).Register()
	NewHomeHandler(*app, router).Register()

	return nil
}
