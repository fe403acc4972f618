package models

// MatchResult is the outcome of one match. Draws are not recorded.
type MatchResult struct {
	WinnerID int `json:"winner_id"`
	LoserID  int `json:"loser_id"`
}
