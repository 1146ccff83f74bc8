package services

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"football-data-service/models"
	"football-data-service/store"
)

type PlayerService struct {
	Store store.Store
}

func NewPlayerService(st store.Store) *PlayerService {
	return &PlayerService{Store: st}
}

// GetPlayers lists players matching the optional query filters.
func (s *PlayerService) GetPlayers(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return validationError(c, err)
	}
	minAge, err := queryInt(c, "min_age")
	if err != nil {
		return validationError(c, err)
	}
	maxAge, err := queryInt(c, "max_age")
	if err != nil {
		return validationError(c, err)
	}
	isTest, err := queryBool(c, "is_test")
	if err != nil {
		return validationError(c, err)
	}

	filter := models.PlayerFilter{
		Name:        queryString(c, "name"),
		Position:    queryString(c, "position"),
		TeamID:      queryString(c, "team_id"),
		Nationality: queryString(c, "nationality"),
		MinAge:      minAge,
		MaxAge:      maxAge,
		IsTest:      isTest,
	}

	players := make([]models.Player, 0, page.Limit)
	if err := s.Store.Find(c.Context(), store.Players, filter.Query(), page, &players); err != nil {
		log.Error().Err(err).Msg("failed to list players")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch players"})
	}
	return c.JSON(players)
}

// GetPlayer returns a single player by id.
func (s *PlayerService) GetPlayer(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid player ID format"})
	}
	var player models.Player
	if err := s.Store.FindByID(c.Context(), store.Players, id, &player); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Player not found"})
		}
		log.Error().Err(err).Msg("failed to fetch player")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch player"})
	}
	return c.JSON(player)
}

// CreatePlayer inserts a new player. Everything created through the API is
// test data: is_test is stamped true unconditionally.
func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	var body models.PlayerCreate
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errors.New("invalid request body"))
	}
	if body.Name == "" {
		return validationError(c, errors.New("name is required"))
	}

	player := models.Player{
		Name:        body.Name,
		Position:    body.Position,
		TeamID:      body.TeamID,
		Age:         body.Age,
		Nationality: body.Nationality,
		IsTest:      true,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.Store.Insert(c.Context(), store.Players, player)
	if err != nil {
		log.Error().Err(err).Msg("failed to create player")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create player"})
	}
	player.ID = id
	return c.Status(fiber.StatusCreated).JSON(player)
}

// UpdatePlayer applies a partial update. Only test data can be modified.
func (s *PlayerService) UpdatePlayer(c *fiber.Ctx) error {
	var body models.PlayerUpdate
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errors.New("invalid request body"))
	}

	const forbidden = "Cannot modify real data. Only test data can be updated."
	id, err := authorizeMutation(c.Context(), s.Store, store.Players, c.Params("id"))
	if err != nil {
		return mutationError(c, "player", forbidden, err)
	}

	if set := body.Changes(); len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if err := s.Store.UpdateByID(c.Context(), store.Players, id, set); err != nil {
			return mutationError(c, "player", forbidden, err)
		}
	}

	var player models.Player
	if err := s.Store.FindByID(c.Context(), store.Players, id, &player); err != nil {
		return mutationError(c, "player", forbidden, err)
	}
	return c.JSON(player)
}

// DeletePlayer removes a player. Only test data can be deleted.
func (s *PlayerService) DeletePlayer(c *fiber.Ctx) error {
	const forbidden = "Cannot delete real data. Only test data can be deleted."
	id, err := authorizeMutation(c.Context(), s.Store, store.Players, c.Params("id"))
	if err != nil {
		return mutationError(c, "player", forbidden, err)
	}
	if err := s.Store.DeleteByID(c.Context(), store.Players, id); err != nil {
		return mutationError(c, "player", forbidden, err)
	}
	return c.JSON(fiber.Map{"message": "Player deleted successfully"})
}
