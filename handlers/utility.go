package handlers

import (
	"github.com/gofiber/fiber/v2"

	"football-data-service/services"
)

// SetupUtilityRoutes registers the API index and the test-data cleanup route.
func SetupUtilityRoutes(app *fiber.App, cleanupService *services.CleanupService) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Football API",
			"endpoints": fiber.Map{
				"players": "/players",
				"teams":   "/teams",
				"matches": "/matches",
			},
		})
	})

	app.Delete("/cleanup/test-data", cleanupService.CleanupTestData)
}
