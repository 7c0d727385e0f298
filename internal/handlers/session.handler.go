package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/catalog"
	"stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	Handler
	controller catalog.CatalogControllerInterface
}

func NewSessionHandler(app app.App, router fiber.Router) *SessionHandler {
	return &SessionHandler{
		controller: app.CatalogController,
		Handler: Handler{
			log:        logger.New("handlers").File("session_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SessionHandler) Register() {
	routes := contract.API.Sessions
	h.router.Add(routes.List.Method, routes.List.Path, h.list)
	h.router.Add(routes.Get.Method, routes.Get.Path, h.get)
	h.router.Add(routes.Create.Method, routes.Create.Path, h.create)
	h.router.Add(routes.Update.Method, routes.Update.Path, h.update)
	h.router.Add(routes.Delete.Method, routes.Delete.Path, h.delete)
	h.router.Add(routes.Play.Method, routes.Play.Path, h.play)
}

func (h *SessionHandler) list(c *fiber.Ctx) error {
	filters := models.SessionFilters{
		Category: c.Query("category"),
		Duration: c.QueryInt("duration"),
		Search:   c.Query("search"),
		Featured: c.QueryBool("featured"),
	}

	sessions, err := h.controller.ListSessions(c.UserContext(), filters)
	if err != nil {
		return err
	}

	return c.JSON(sessions)
}

func (h *SessionHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	session, err := h.controller.GetSession(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

func (h *SessionHandler) create(c *fiber.Ctx) error {
	var req models.SessionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	session, err := h.controller.CreateSession(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.SessionUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	session, err := h.controller.UpdateSession(c.UserContext(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

func (h *SessionHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.controller.DeleteSession(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) play(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	session, err := h.controller.PlaySession(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(session)
}
