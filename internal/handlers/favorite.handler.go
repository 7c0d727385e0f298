package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/library"
	"stillpoint/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Handler
	controller library.LibraryControllerInterface
}

func NewFavoriteHandler(app app.App, router fiber.Router) *FavoriteHandler {
	return &FavoriteHandler{
		controller: app.LibraryController,
		Handler: Handler{
			log:        logger.New("handlers").File("favorite_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *FavoriteHandler) Register() {
	routes := contract.API.Favorites
	auth := h.middleware.RequireAuth()
	h.router.Add(routes.List.Method, routes.List.Path, auth, h.list)
	h.router.Add(routes.Toggle.Method, routes.Toggle.Path, auth, h.toggle)
	h.router.Add(routes.Check.Method, routes.Check.Path, auth, h.check)
}

func (h *FavoriteHandler) list(c *fiber.Ctx) error {
	sessions, err := h.controller.ListFavorites(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(sessions)
}

func (h *FavoriteHandler) toggle(c *fiber.Ctx) error {
	sessionID, err := parseIDParam(c, "sessionId")
	if err != nil {
		return err
	}

	status, err := h.controller.ToggleFavorite(c.UserContext(), middleware.GetUserID(c), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(status)
}

func (h *FavoriteHandler) check(c *fiber.Ctx) error {
	sessionID, err := parseIDParam(c, "sessionId")
	if err != nil {
		return err
	}

	status, err := h.controller.GetFavoriteStatus(c.UserContext(), middleware.GetUserID(c), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(status)
}
