package models

import "time"

// Pairing is a single match of the next Swiss round.
type Pairing struct {
	Player1ID   int    `json:"id1"`
	Player1Name string `json:"name1"`
	Player2ID   int    `json:"id2"`
	Player2Name string `json:"name2"`
}

// RoundSnapshot is the published state of the tournament at a point in time.
type RoundSnapshot struct {
	GeneratedAt  time.Time `json:"generated_at"`
	PlayerCount  int       `json:"player_count"`
	Players      []Player  `json:"players"`
	Pairings     []Pairing `json:"pairings"`
	PairingError string    `json:"pairing_error,omitempty"`
	Key          string    `json:"key,omitempty"`
	URL          string    `json:"url,omitempty"`
}
