package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"football-data-service/store"
)

// Team is a stored team document.
type Team struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Country   *string            `bson:"country,omitempty" json:"country,omitempty"`
	League    *string            `bson:"league,omitempty" json:"league,omitempty"`
	Stadium   *string            `bson:"stadium,omitempty" json:"stadium,omitempty"`
	IsTest    bool               `bson:"is_test" json:"is_test"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type TeamCreate struct {
	Name    string  `json:"name"`
	Country *string `json:"country"`
	League  *string `json:"league"`
	Stadium *string `json:"stadium"`
}

type TeamUpdate struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
	League  *string `json:"league"`
	Stadium *string `json:"stadium"`
}

func (u TeamUpdate) Changes() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Country != nil {
		set["country"] = *u.Country
	}
	if u.League != nil {
		set["league"] = *u.League
	}
	if u.Stadium != nil {
		set["stadium"] = *u.Stadium
	}
	return set
}

// TeamFilter holds the optional list-query parameters for teams.
type TeamFilter struct {
	Name    *string
	Country *string
	League  *string
	IsTest  *bool
}

func (f TeamFilter) Query() bson.M {
	return store.Compose(
		store.TextContains("name", f.Name),
		store.TextContains("country", f.Country),
		store.TextContains("league", f.League),
		store.BoolEquals("is_test", f.IsTest),
	)
}
