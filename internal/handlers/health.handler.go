package handlers

import (
	"stillpoint/config"
	"stillpoint/internal/contract"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, config config.Config) {
	route := contract.API.Health
	router.Add(route.Method, route.Path, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": config.GeneralVersion,
			"service": "stillpoint_api",
		})
	})
}
