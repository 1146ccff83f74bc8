package handlers

import (
	"github.com/gofiber/fiber/v2"

	"football-data-service/services"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	app.Get("/players", playerService.GetPlayers)
	app.Get("/players/:id", playerService.GetPlayer)
	app.Post("/players", playerService.CreatePlayer)
	app.Put("/players/:id", playerService.UpdatePlayer)
	app.Delete("/players/:id", playerService.DeletePlayer)
}
