package services

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"football-data-service/models"
	"football-data-service/store"
)

type TeamService struct {
	Store store.Store
}

func NewTeamService(st store.Store) *TeamService {
	return &TeamService{Store: st}
}

// GetTeams lists teams matching the optional query filters.
func (s *TeamService) GetTeams(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return validationError(c, err)
	}
	isTest, err := queryBool(c, "is_test")
	if err != nil {
		return validationError(c, err)
	}

	filter := models.TeamFilter{
		Name:    queryString(c, "name"),
		Country: queryString(c, "country"),
		League:  queryString(c, "league"),
		IsTest:  isTest,
	}

	teams := make([]models.Team, 0, page.Limit)
	if err := s.Store.Find(c.Context(), store.Teams, filter.Query(), page, &teams); err != nil {
		log.Error().Err(err).Msg("failed to list teams")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch teams"})
	}
	return c.JSON(teams)
}

// GetTeam returns a single team by id.
func (s *TeamService) GetTeam(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team ID format"})
	}
	var team models.Team
	if err := s.Store.FindByID(c.Context(), store.Teams, id, &team); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team not found"})
		}
		log.Error().Err(err).Msg("failed to fetch team")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch team"})
	}
	return c.JSON(team)
}

// CreateTeam inserts a new team, always stamped as test data.
func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	var body models.TeamCreate
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errors.New("invalid request body"))
	}
	if body.Name == "" {
		return validationError(c, errors.New("name is required"))
	}

	team := models.Team{
		Name:      body.Name,
		Country:   body.Country,
		League:    body.League,
		Stadium:   body.Stadium,
		IsTest:    true,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.Store.Insert(c.Context(), store.Teams, team)
	if err != nil {
		log.Error().Err(err).Msg("failed to create team")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create team"})
	}
	team.ID = id
	return c.Status(fiber.StatusCreated).JSON(team)
}

// UpdateTeam applies a partial update. Only test data can be modified.
func (s *TeamService) UpdateTeam(c *fiber.Ctx) error {
	var body models.TeamUpdate
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errors.New("invalid request body"))
	}

	const forbidden = "Cannot modify real data. Only test data can be updated."
	id, err := authorizeMutation(c.Context(), s.Store, store.Teams, c.Params("id"))
	if err != nil {
		return mutationError(c, "team", forbidden, err)
	}

	if set := body.Changes(); len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if err := s.Store.UpdateByID(c.Context(), store.Teams, id, set); err != nil {
			return mutationError(c, "team", forbidden, err)
		}
	}

	var team models.Team
	if err := s.Store.FindByID(c.Context(), store.Teams, id, &team); err != nil {
		return mutationError(c, "team", forbidden, err)
	}
	return c.JSON(team)
}

// DeleteTeam removes a team. Only test data can be deleted.
func (s *TeamService) DeleteTeam(c *fiber.Ctx) error {
	const forbidden = "Cannot delete real data. Only test data can be deleted."
	id, err := authorizeMutation(c.Context(), s.Store, store.Teams, c.Params("id"))
	if err != nil {
		return mutationError(c, "team", forbidden, err)
	}
	if err := s.Store.DeleteByID(c.Context(), store.Teams, id); err != nil {
		return mutationError(c, "team", forbidden, err)
	}
	return c.JSON(fiber.Map{"message": "Team deleted successfully"})
}
