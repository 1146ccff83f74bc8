package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string        { return &s }
func intPtr(n int) *int              { return &n }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestCompose(t *testing.T) {
	t.Run("no predicates yields empty query", func(t *testing.T) {
		assert.Equal(t, bson.M{}, Compose())
	})

	t.Run("nil predicates contribute nothing", func(t *testing.T) {
		q := Compose(
			TextContains("name", nil),
			IDEquals("team_id", nil),
			BoolEquals("is_test", nil),
			IntAtLeast("age", nil),
			TimeFrom("date", nil),
			EitherIDEquals("home_team_id", "away_team_id", nil),
		)
		assert.Equal(t, bson.M{}, q)
	})

	t.Run("empty strings are treated as absent", func(t *testing.T) {
		q := Compose(
			TextContains("name", strPtr("")),
			IDEquals("team_id", strPtr("")),
		)
		assert.Equal(t, bson.M{}, q)
	})
}

func TestTextContains(t *testing.T) {
	q := Compose(TextContains("name", strPtr("ali")))
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "ali", "$options": "i"}}, q)
}

func TestIDEquals(t *testing.T) {
	q := Compose(IDEquals("team_id", strPtr("abc123")))
	assert.Equal(t, bson.M{"team_id": "abc123"}, q)
}

func TestBoolEquals(t *testing.T) {
	t.Run("explicit false is a constraint", func(t *testing.T) {
		q := Compose(BoolEquals("is_test", boolPtr(false)))
		assert.Equal(t, bson.M{"is_test": false}, q)
	})

	t.Run("true", func(t *testing.T) {
		q := Compose(BoolEquals("is_test", boolPtr(true)))
		assert.Equal(t, bson.M{"is_test": true}, q)
	})
}

func TestRangeBounds(t *testing.T) {
	t.Run("lower bound alone", func(t *testing.T) {
		q := Compose(IntAtLeast("age", intPtr(20)))
		assert.Equal(t, bson.M{"age": bson.M{"$gte": 20}}, q)
	})

	t.Run("upper bound alone", func(t *testing.T) {
		q := Compose(IntAtMost("age", intPtr(30)))
		assert.Equal(t, bson.M{"age": bson.M{"$lte": 30}}, q)
	})

	t.Run("both bounds merge into one closed range", func(t *testing.T) {
		q := Compose(
			IntAtLeast("age", intPtr(20)),
			IntAtMost("age", intPtr(30)),
		)
		assert.Equal(t, bson.M{"age": bson.M{"$gte": 20, "$lte": 30}}, q)
	})

	t.Run("time bounds merge the same way", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		q := Compose(
			TimeFrom("date", timePtr(from)),
			TimeTo("date", timePtr(to)),
		)
		assert.Equal(t, bson.M{"date": bson.M{"$gte": from, "$lte": to}}, q)
	})
}

func TestEitherIDEquals(t *testing.T) {
	q := Compose(EitherIDEquals("home_team_id", "away_team_id", strPtr("A")))
	require.Contains(t, q, "$or")
	assert.Equal(t, []bson.M{{"home_team_id": "A"}, {"away_team_id": "A"}}, q["$or"])
}

func TestConjunction(t *testing.T) {
	// Every supplied parameter lands as an independent clause, including the
	// $or alongside exact matches on the same fields.
	q := Compose(
		IDEquals("home_team_id", strPtr("A")),
		IDEquals("away_team_id", strPtr("B")),
		EitherIDEquals("home_team_id", "away_team_id", strPtr("A")),
		TextContains("stadium", strPtr("wembley")),
		TimeFrom("date", timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))),
		BoolEquals("is_test", boolPtr(true)),
	)
	assert.Len(t, q, 6)
	assert.Equal(t, "A", q["home_team_id"])
	assert.Equal(t, "B", q["away_team_id"])
	assert.Contains(t, q, "$or")
	assert.Contains(t, q, "stadium")
	assert.Equal(t, true, q["is_test"])
}
