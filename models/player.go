package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"football-data-service/store"
)

// Player is a stored player document. TeamID is a soft reference to a Team's
// id; the store does not enforce it.
type Player struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Position    *string            `bson:"position,omitempty" json:"position,omitempty"`
	TeamID      *string            `bson:"team_id,omitempty" json:"team_id,omitempty"`
	Age         *int               `bson:"age,omitempty" json:"age,omitempty"`
	Nationality *string            `bson:"nationality,omitempty" json:"nationality,omitempty"`
	IsTest      bool               `bson:"is_test" json:"is_test"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type PlayerCreate struct {
	Name        string  `json:"name"`
	Position    *string `json:"position"`
	TeamID      *string `json:"team_id"`
	Age         *int    `json:"age"`
	Nationality *string `json:"nationality"`
}

// PlayerUpdate carries a partial update: nil fields are left unchanged, so a
// field can never be unset back to absent.
type PlayerUpdate struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	TeamID      *string `json:"team_id"`
	Age         *int    `json:"age"`
	Nationality *string `json:"nationality"`
}

// Changes returns the $set document for the supplied fields.
func (u PlayerUpdate) Changes() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Position != nil {
		set["position"] = *u.Position
	}
	if u.TeamID != nil {
		set["team_id"] = *u.TeamID
	}
	if u.Age != nil {
		set["age"] = *u.Age
	}
	if u.Nationality != nil {
		set["nationality"] = *u.Nationality
	}
	return set
}

// PlayerFilter holds the optional list-query parameters for players.
type PlayerFilter struct {
	Name        *string
	Position    *string
	TeamID      *string
	Nationality *string
	MinAge      *int
	MaxAge      *int
	IsTest      *bool
}

// Query composes the supplied parameters into a single ANDed store predicate.
func (f PlayerFilter) Query() bson.M {
	return store.Compose(
		store.TextContains("name", f.Name),
		store.TextContains("position", f.Position),
		store.IDEquals("team_id", f.TeamID),
		store.TextContains("nationality", f.Nationality),
		store.IntAtLeast("age", f.MinAge),
		store.IntAtMost("age", f.MaxAge),
		store.BoolEquals("is_test", f.IsTest),
	)
}
