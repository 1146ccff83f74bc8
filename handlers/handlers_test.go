package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"football-data-service/services"
	"football-data-service/store"
)

// newTestApp wires the full route surface against an in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	app := fiber.New()
	SetupPlayerRoutes(app, services.NewPlayerService(st))
	SetupTeamRoutes(app, services.NewTeamService(st))
	SetupMatchRoutes(app, services.NewMatchService(st))
	SetupUtilityRoutes(app, services.NewCleanupService(st))
	return app, st
}

// request performs an in-process HTTP request, JSON-encoding body when given.
func request(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeObject(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal(raw, &obj))
	return obj
}

func decodeArray(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var arr []map[string]any
	require.NoError(t, json.Unmarshal(raw, &arr))
	return arr
}

// createRecord POSTs body to path and returns the created record.
func createRecord(t *testing.T, app *fiber.App, path string, body any) map[string]any {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, status, "create %s: %s", path, raw)
	return decodeObject(t, raw)
}
