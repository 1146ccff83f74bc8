package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"football-data-service/store"
)

// Match is a stored match document. The team id fields are soft references,
// never enforced against the teams collection.
type Match struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HomeTeamID *string            `bson:"home_team_id,omitempty" json:"home_team_id,omitempty"`
	AwayTeamID *string            `bson:"away_team_id,omitempty" json:"away_team_id,omitempty"`
	Date       *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	HomeScore  *int               `bson:"home_score,omitempty" json:"home_score,omitempty"`
	AwayScore  *int               `bson:"away_score,omitempty" json:"away_score,omitempty"`
	Stadium    *string            `bson:"stadium,omitempty" json:"stadium,omitempty"`
	IsTest     bool               `bson:"is_test" json:"is_test"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type MatchCreate struct {
	HomeTeamID *string    `json:"home_team_id"`
	AwayTeamID *string    `json:"away_team_id"`
	Date       *time.Time `json:"date"`
	HomeScore  *int       `json:"home_score"`
	AwayScore  *int       `json:"away_score"`
	Stadium    *string    `json:"stadium"`
}

type MatchUpdate struct {
	HomeTeamID *string    `json:"home_team_id"`
	AwayTeamID *string    `json:"away_team_id"`
	Date       *time.Time `json:"date"`
	HomeScore  *int       `json:"home_score"`
	AwayScore  *int       `json:"away_score"`
	Stadium    *string    `json:"stadium"`
}

func (u MatchUpdate) Changes() bson.M {
	set := bson.M{}
	if u.HomeTeamID != nil {
		set["home_team_id"] = *u.HomeTeamID
	}
	if u.AwayTeamID != nil {
		set["away_team_id"] = *u.AwayTeamID
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.HomeScore != nil {
		set["home_score"] = *u.HomeScore
	}
	if u.AwayScore != nil {
		set["away_score"] = *u.AwayScore
	}
	if u.Stadium != nil {
		set["stadium"] = *u.Stadium
	}
	return set
}

// MatchFilter holds the optional list-query parameters for matches. TeamID
// matches either side of the fixture and is ANDed with the explicit
// HomeTeamID/AwayTeamID constraints when both are supplied.
type MatchFilter struct {
	HomeTeamID *string
	AwayTeamID *string
	TeamID     *string
	Stadium    *string
	DateFrom   *time.Time
	DateTo     *time.Time
	IsTest     *bool
}

func (f MatchFilter) Query() bson.M {
	return store.Compose(
		store.IDEquals("home_team_id", f.HomeTeamID),
		store.IDEquals("away_team_id", f.AwayTeamID),
		store.EitherIDEquals("home_team_id", "away_team_id", f.TeamID),
		store.TextContains("stadium", f.Stadium),
		store.TimeFrom("date", f.DateFrom),
		store.TimeTo("date", f.DateTo),
		store.BoolEquals("is_test", f.IsTest),
	)
}
