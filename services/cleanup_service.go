package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"football-data-service/store"
)

type CleanupService struct {
	Store store.Store
}

func NewCleanupService(st store.Store) *CleanupService {
	return &CleanupService{Store: st}
}

// CleanupTestData removes every test-flagged document from all three
// collections. The deletions are independent, not transactional: a failure in
// one collection does not stop the others, and each collection reports its
// own count.
func (s *CleanupService) CleanupTestData(c *fiber.Ctx) error {
	deleted := fiber.Map{}
	failures := fiber.Map{}

	for _, collection := range []string{store.Players, store.Teams, store.Matches} {
		n, err := s.Store.DeleteMany(c.Context(), collection, bson.M{"is_test": true})
		if err != nil {
			log.Error().Err(err).Str("collection", collection).Msg("test data cleanup failed")
			failures[collection] = err.Error()
			continue
		}
		deleted[collection] = n
	}

	resp := fiber.Map{
		"message": "Test data cleaned up",
		"deleted": deleted,
	}
	if len(failures) > 0 {
		resp["errors"] = failures
		if len(deleted) == 0 {
			return c.Status(fiber.StatusInternalServerError).JSON(resp)
		}
	}
	return c.JSON(resp)
}
