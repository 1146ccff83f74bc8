package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"football-data-service/models"
	"football-data-service/store"
)

func TestAuthorizeMutation(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	testID, err := st.Seed(store.Players, models.Player{
		Name:      "Synthetic",
		IsTest:    true,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	prodID, err := st.Seed(store.Players, bson.M{
		"name":       "Legacy",
		"created_at": time.Now().UTC(),
	})
	require.NoError(t, err)

	t.Run("malformed id fails before any lookup", func(t *testing.T) {
		_, err := authorizeMutation(ctx, st, store.Players, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("well-formed unknown id is a miss", func(t *testing.T) {
		_, err := authorizeMutation(ctx, st, store.Players, "ffffffffffffffffffffffff")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("document without the test flag is forbidden", func(t *testing.T) {
		_, err := authorizeMutation(ctx, st, store.Players, prodID.Hex())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("explicit false flag is forbidden", func(t *testing.T) {
		id, err := st.Seed(store.Players, bson.M{"name": "Real", "is_test": false})
		require.NoError(t, err)
		_, err = authorizeMutation(ctx, st, store.Players, id.Hex())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("test data is authorized", func(t *testing.T) {
		id, err := authorizeMutation(ctx, st, store.Players, testID.Hex())
		require.NoError(t, err)
		assert.Equal(t, testID, id)
	})

	t.Run("deleted id becomes a miss", func(t *testing.T) {
		id, err := st.Seed(store.Teams, models.Team{Name: "Gone", IsTest: true})
		require.NoError(t, err)
		require.NoError(t, st.DeleteByID(ctx, store.Teams, id))
		_, err = authorizeMutation(ctx, st, store.Teams, id.Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
