package services

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"football-data-service/models"
	"football-data-service/store"
)

type MatchService struct {
	Store store.Store
}

func NewMatchService(st store.Store) *MatchService {
	return &MatchService{Store: st}
}

// GetMatches lists matches matching the optional query filters. The team_id
// parameter matches fixtures where the team played on either side.
func (s *MatchService) GetMatches(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return validationError(c, err)
	}
	dateFrom, err := queryTime(c, "date_from")
	if err != nil {
		return validationError(c, err)
	}
	dateTo, err := queryTime(c, "date_to")
	if err != nil {
		return validationError(c, err)
	}
	isTest, err := queryBool(c, "is_test")
	if err != nil {
		return validationError(c, err)
	}

	filter := models.MatchFilter{
		HomeTeamID: queryString(c, "home_team_id"),
		AwayTeamID: queryString(c, "away_team_id"),
		TeamID:     queryString(c, "team_id"),
		Stadium:    queryString(c, "stadium"),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		IsTest:     isTest,
	}

	matches := make([]models.Match, 0, page.Limit)
	if err := s.Store.Find(c.Context(), store.Matches, filter.Query(), page, &matches); err != nil {
		log.Error().Err(err).Msg("failed to list matches")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch matches"})
	}
	return c.JSON(matches)
}

// GetMatch returns a single match by id.
func (s *MatchService) GetMatch(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid match ID format"})
	}
	var match models.Match
	if err := s.Store.FindByID(c.Context(), store.Matches, id, &match); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Match not found"})
		}
		log.Error().Err(err).Msg("failed to fetch match")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch match"})
	}
	return c.JSON(match)
}

// CreateMatch inserts a new match, always stamped as test data.
func (s *MatchService) CreateMatch(c *fiber.Ctx) error {
	var body models.MatchCreate
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errors.New("invalid request body"))
	}

	match := models.Match{
		HomeTeamID: body.HomeTeamID,
		AwayTeamID: body.AwayTeamID,
		Date:       body.Date,
		HomeScore:  body.HomeScore,
		AwayScore:  body.AwayScore,
		Stadium:    body.Stadium,
		IsTest:     true,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.Store.Insert(c.Context(), store.Matches, match)
	if err != nil {
		log.Error().Err(err).Msg("failed to create match")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create match"})
	}
	match.ID = id
	return c.Status(fiber.StatusCreated).JSON(match)
}

// UpdateMatch applies a partial update. Only test data can be modified.
func (s *MatchService) UpdateMatch(c *fiber.Ctx) error {
	var body models.MatchUpdate
	if err := c.BodyParser(&body); err != nil {
		return validationError(c, errors.New("invalid request body"))
	}

	const forbidden = "Cannot modify real data. Only test data can be updated."
	id, err := authorizeMutation(c.Context(), s.Store, store.Matches, c.Params("id"))
	if err != nil {
		return mutationError(c, "match", forbidden, err)
	}

	if set := body.Changes(); len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if err := s.Store.UpdateByID(c.Context(), store.Matches, id, set); err != nil {
			return mutationError(c, "match", forbidden, err)
		}
	}

	var match models.Match
	if err := s.Store.FindByID(c.Context(), store.Matches, id, &match); err != nil {
		return mutationError(c, "match", forbidden, err)
	}
	return c.JSON(match)
}

// DeleteMatch removes a match. Only test data can be deleted.
func (s *MatchService) DeleteMatch(c *fiber.Ctx) error {
	const forbidden = "Cannot delete real data. Only test data can be deleted."
	id, err := authorizeMutation(c.Context(), s.Store, store.Matches, c.Params("id"))
	if err != nil {
		return mutationError(c, "match", forbidden, err)
	}
	if err := s.Store.DeleteByID(c.Context(), store.Matches, id); err != nil {
		return mutationError(c, "match", forbidden, err)
	}
	return c.JSON(fiber.Map{"message": "Match deleted successfully"})
}
