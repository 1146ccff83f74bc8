package services

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"football-data-service/store"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// parsePage validates the skip/limit window at the request boundary, before
// any filter is built or the store is touched.
func parsePage(c *fiber.Ctx) (store.Page, error) {
	page := store.Page{Limit: defaultLimit}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			return page, errors.Newf("limit must be an integer between 1 and %d", maxLimit)
		}
		page.Limit = int64(n)
	}
	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, errors.New("skip must be a non-negative integer")
		}
		page.Skip = int64(n)
	}
	return page, nil
}

// queryString returns the parameter value, or nil when absent or empty.
func queryString(c *fiber.Ctx, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Newf("%s must be an integer", key)
	}
	return &n, nil
}

func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Newf("%s must be a boolean", key)
	}
	return &b, nil
}

// queryTime accepts RFC 3339 timestamps or bare dates.
func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, errors.Newf("%s must be an RFC 3339 timestamp or YYYY-MM-DD date", key)
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
}
