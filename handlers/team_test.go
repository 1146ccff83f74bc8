package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"football-data-service/store"
)

func TestTeamCRUD(t *testing.T) {
	app, st := newTestApp(t)

	t.Run("create stamps the test flag", func(t *testing.T) {
		team := createRecord(t, app, "/teams", map[string]any{
			"name": "Arsenal", "country": "England", "league": "Premier League", "stadium": "Emirates",
		})
		assert.Equal(t, true, team["is_test"])
		assert.Equal(t, "Emirates", team["stadium"])
	})

	t.Run("create requires a name", func(t *testing.T) {
		status, _ := request(t, app, http.MethodPost, "/teams", map[string]any{"country": "Spain"})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("update and delete honor the guard", func(t *testing.T) {
		team := createRecord(t, app, "/teams", map[string]any{"name": "Ajax"})
		id := team["id"].(string)

		status, raw := request(t, app, http.MethodPut, "/teams/"+id, map[string]any{"league": "Eredivisie"})
		require.Equal(t, http.StatusOK, status)
		got := decodeObject(t, raw)
		assert.Equal(t, "Eredivisie", got["league"])
		assert.Equal(t, "Ajax", got["name"])
		assert.NotEmpty(t, got["updated_at"])

		status, raw = request(t, app, http.MethodDelete, "/teams/"+id, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Team deleted successfully", decodeObject(t, raw)["message"])

		status, _ = request(t, app, http.MethodGet, "/teams/"+id, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("production teams reject mutation", func(t *testing.T) {
		prodID, err := st.Seed(store.Teams, bson.M{"name": "Historic FC"})
		require.NoError(t, err)

		status, _ := request(t, app, http.MethodPut, "/teams/"+prodID.Hex(), map[string]any{"name": "Renamed"})
		assert.Equal(t, http.StatusForbidden, status)
		status, _ = request(t, app, http.MethodDelete, "/teams/"+prodID.Hex(), nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("malformed id", func(t *testing.T) {
		status, _ := request(t, app, http.MethodGet, "/teams/xyz", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestListTeams(t *testing.T) {
	app, _ := newTestApp(t)
	createRecord(t, app, "/teams", map[string]any{"name": "Arsenal", "country": "England", "league": "Premier League"})
	createRecord(t, app, "/teams", map[string]any{"name": "Barcelona", "country": "Spain", "league": "La Liga"})
	createRecord(t, app, "/teams", map[string]any{"name": "Real Madrid", "country": "Spain", "league": "La Liga"})

	names := func(t *testing.T, target string) []string {
		status, raw := request(t, app, http.MethodGet, target, nil)
		require.Equal(t, http.StatusOK, status)
		var out []string
		for _, rec := range decodeArray(t, raw) {
			out = append(out, rec["name"].(string))
		}
		return out
	}

	t.Run("country filter is a case-insensitive substring", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Barcelona", "Real Madrid"}, names(t, "/teams?country=spain"))
	})

	t.Run("league and name filters conjoin", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Real Madrid"}, names(t, "/teams?league=la+liga&name=real"))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, names(t, "/teams?country=france"))
	})
}
