package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Dosada05/swiss-tournament/models"
)

type playerCount struct {
	Count int `json:"count"`
}

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
		return
	}

	switch v := data.(type) {
	case *models.Player:
		o.printPlayers([]models.Player{*v})
	case []models.Player:
		o.printPlayers(v)
	case []models.Standing:
		o.printStandings(v)
	case []models.Pairing:
		o.printPairings(v)
	case playerCount:
		fmt.Fprintln(o.w, v.Count)
	case *models.RoundSnapshot:
		fmt.Fprintf(o.w, "Published %s (%d players, %d pairings)\n", v.URL, v.PlayerCount, len(v.Pairings))
		if v.PairingError != "" {
			fmt.Fprintf(o.w, "Pairings unavailable: %s\n", v.PairingError)
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printPlayers(players []models.Player) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPLAYED\tWINS\tLOSSES\tPOINTS")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n", p.ID, p.Name, p.MatchesPlayed, p.Wins, p.Losses, p.Points)
	}
	_ = tw.Flush()
}

func (o *Output) printStandings(standings []models.Standing) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tWINS\tPLAYED")
	for i, s := range standings {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\n", i+1, s.ID, s.Name, s.Wins, s.MatchesPlayed)
	}
	_ = tw.Flush()
}

func (o *Output) printPairings(pairings []models.Pairing) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tID1\tNAME1\tID2\tNAME2")
	for i, p := range pairings {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\n", i+1, p.Player1ID, p.Player1Name, p.Player2ID, p.Player2Name)
	}
	_ = tw.Flush()
}
