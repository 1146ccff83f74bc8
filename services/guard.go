package services

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"football-data-service/store"
)

// testFlag is the minimal projection needed to authorize a mutation.
type testFlag struct {
	IsTest bool `bson:"is_test"`
}

// parseID rejects malformed identifiers before any store access.
func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// authorizeMutation resolves raw in the given collection and enforces the
// test-data rule: only documents stored with is_test=true may be updated or
// deleted. A document without the flag is pre-existing production data and is
// left untouched.
//
// The check and the following write are separate store round-trips; a delete
// racing between them surfaces as ErrNoDocument from the write, which callers
// report as a plain miss.
func authorizeMutation(ctx context.Context, st store.Store, collection, raw string) (primitive.ObjectID, error) {
	id, err := parseID(raw)
	if err != nil {
		return primitive.NilObjectID, err
	}
	var flag testFlag
	if err := st.FindByID(ctx, collection, id, &flag); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return primitive.NilObjectID, ErrNotFound
		}
		return primitive.NilObjectID, err
	}
	if !flag.IsTest {
		return primitive.NilObjectID, ErrForbidden
	}
	return id, nil
}

// mutationError maps a guard or store failure to the client-facing response.
// kind names the entity for the 400/404 bodies; forbiddenMsg is the
// operation-specific 403 body.
func mutationError(c *fiber.Ctx, kind, forbiddenMsg string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid " + kind + " ID format"})
	case errors.Is(err, ErrNotFound), errors.Is(err, store.ErrNoDocument):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": capitalized(kind) + " not found"})
	case errors.Is(err, ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": forbiddenMsg})
	}
	log.Error().Err(err).Str("kind", kind).Msg("store operation failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "store operation failed"})
}

func capitalized(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
