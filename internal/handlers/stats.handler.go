package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/library"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	Handler
	controller library.LibraryControllerInterface
}

func NewStatsHandler(app app.App, router fiber.Router) *StatsHandler {
	return &StatsHandler{
		controller: app.LibraryController,
		Handler: Handler{
			log:        logger.New("handlers").File("stats_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *StatsHandler) Register() {
	routes := contract.API.Stats
	h.router.Add(routes.Usage.Method, routes.Usage.Path, h.usage)
}

func (h *StatsHandler) usage(c *fiber.Ctx) error {
	stats, err := h.controller.GetUsageStats(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
