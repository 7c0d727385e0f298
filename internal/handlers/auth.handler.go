package handlers

import (
	"stillpoint/internal/app"
	"stillpoint/internal/contract"
	"stillpoint/internal/controllers/auth"
	"stillpoint/internal/handlers/middleware"
	"stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	controller auth.AuthControllerInterface
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	return &AuthHandler{
		controller: app.AuthController,
		Handler: Handler{
			log:        logger.New("handlers").File("auth_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	routes := contract.API.Auth
	h.router.Add(routes.Register.Method, routes.Register.Path, h.register)
	h.router.Add(routes.Login.Method, routes.Login.Path, h.login)
	h.router.Add(routes.Me.Method, routes.Me.Path, h.middleware.RequireAuth(), h.me)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.controller.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.controller.Login(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	profile, err := h.controller.GetUser(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(profile)
}
