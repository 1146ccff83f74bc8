package handlers

import (
	"github.com/gofiber/fiber/v2"

	"football-data-service/services"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	app.Get("/teams", teamService.GetTeams)
	app.Get("/teams/:id", teamService.GetTeam)
	app.Post("/teams", teamService.CreateTeam)
	app.Put("/teams/:id", teamService.UpdateTeam)
	app.Delete("/teams/:id", teamService.DeleteTeam)
}
