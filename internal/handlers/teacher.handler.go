package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/catalog"
	"stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type TeacherHandler struct {
	Handler
	controller catalog.CatalogControllerInterface
}

func NewTeacherHandler(app app.App, router fiber.Router) *TeacherHandler {
	return &TeacherHandler{
		controller: app.CatalogController,
		Handler: Handler{
			log:        logger.New("handlers").File("teacher_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TeacherHandler) Register() {
	routes := contract.API.Teachers
	h.router.Add(routes.List.Method, routes.List.Path, h.list)
	h.router.Add(routes.Get.Method, routes.Get.Path, h.get)
	h.router.Add(routes.Create.Method, routes.Create.Path, h.create)
	h.router.Add(routes.Update.Method, routes.Update.Path, h.update)
	h.router.Add(routes.Delete.Method, routes.Delete.Path, h.delete)
}

func (h *TeacherHandler) list(c *fiber.Ctx) error {
	teachers, err := h.controller.ListTeachers(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(teachers)
}

func (h *TeacherHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	teacher, err := h.controller.GetTeacher(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(teacher)
}

func (h *TeacherHandler) create(c *fiber.Ctx) error {
	var req models.TeacherRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	teacher, err := h.controller.CreateTeacher(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(teacher)
}

func (h *TeacherHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.TeacherUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	teacher, err := h.controller.UpdateTeacher(c.UserContext(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(teacher)
}

func (h *TeacherHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.controller.DeleteTeacher(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
