package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/library"
	"stillpoint/internal/handlers/middleware"
	"stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	Handler
	controller library.LibraryControllerInterface
}

func NewProgressHandler(app app.App, router fiber.Router) *ProgressHandler {
	return &ProgressHandler{
		controller: app.LibraryController,
		Handler: Handler{
			log:        logger.New("handlers").File("progress_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ProgressHandler) Register() {
	routes := contract.API.Progress
	auth := h.middleware.RequireAuth()
	h.router.Add(routes.Record.Method, routes.Record.Path, auth, h.record)
	h.router.Add(routes.Stats.Method, routes.Stats.Path, auth, h.stats)
}

func (h *ProgressHandler) record(c *fiber.Ctx) error {
	var req models.ProgressRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	_, err := h.controller.RecordProgress(c.UserContext(), middleware.GetUserID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *ProgressHandler) stats(c *fiber.Ctx) error {
	stats, err := h.controller.GetUserStats(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
