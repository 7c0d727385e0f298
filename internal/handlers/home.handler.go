package handlers

import (
	"time"

	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/catalog"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Handler
	controller catalog.CatalogControllerInterface
}

func NewHomeHandler(app app.App, router fiber.Router) *HomeHandler {
	return &HomeHandler{
		controller: app.CatalogController,
		Handler: Handler{
			log:        logger.New("handlers").File("home_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HomeHandler) Register() {
	routes := contract.API.Home
	h.router.Add(routes.Daily.Method, routes.Daily.Path, h.daily)
	h.router.Add(routes.Featured.Method, routes.Featured.Path, h.featured)
	h.router.Add(routes.Popular.Method, routes.Popular.Path, h.popular)
}

func (h *HomeHandler) daily(c *fiber.Ctx) error {
	session, err := h.controller.GetDailySession(c.UserContext(), time.Now())
	if err != nil {
		return err
	}

	return c.JSON(session)
}

func (h *HomeHandler) featured(c *fiber.Ctx) error {
	sessions, err := h.controller.GetFeaturedSessions(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(sessions)
}

func (h *HomeHandler) popular(c *fiber.Ctx) error {
	sessions, err := h.controller.GetPopularSessions(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(sessions)
}
