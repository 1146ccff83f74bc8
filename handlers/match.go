package handlers

import (
	"github.com/gofiber/fiber/v2"

	"football-data-service/services"
)

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService) {
	app.Get("/matches", matchService.GetMatches)
	app.Get("/matches/:id", matchService.GetMatch)
	app.Post("/matches", matchService.CreateMatch)
	app.Put("/matches/:id", matchService.UpdateMatch)
	app.Delete("/matches/:id", matchService.DeleteMatch)
}
