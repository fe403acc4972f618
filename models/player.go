package models

import "time"

// PointsPerWin is added to a player's points for every reported win. Losses add nothing.
const PointsPerWin = 3

// Player is a registered player together with its aggregate counters.
// MatchesPlayed always equals Wins + Losses.
type Player struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"player_name"`
	MatchesPlayed int       `json:"matches_played" db:"matches_played"`
	Wins          int       `json:"wins" db:"wins"`
	Losses        int       `json:"losses" db:"losses"`
	Points        int       `json:"points" db:"points"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Standing is one row of the standings table.
type Standing struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matches_played"`
}

// ToStanding projects the player onto the standings columns.
func (p Player) ToStanding() Standing {
	return Standing{
		ID:            p.ID,
		Name:          p.Name,
		Wins:          p.Wins,
		MatchesPlayed: p.MatchesPlayed,
	}
}
