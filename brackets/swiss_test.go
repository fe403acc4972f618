package brackets

import (
	"context"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standingsOf(wins ...int) []models.Standing {
	out := make([]models.Standing, len(wins))
	for i, w := range wins {
		out[i] = models.Standing{ID: i + 1, Name: string(rune('A' + i)), Wins: w, MatchesPlayed: 3}
	}
	return out
}

func TestSwissPairingGenerator_PairsAdjacentStandings(t *testing.T) {
	gen := NewSwissPairingGenerator()

	pairings, err := gen.GeneratePairings(context.Background(), standingsOf(3, 2, 2, 1, 1, 0))
	require.NoError(t, err)
	require.Len(t, pairings, 3)

	assert.Equal(t, models.Pairing{Player1ID: 1, Player1Name: "A", Player2ID: 2, Player2Name: "B"}, pairings[0])
	assert.Equal(t, models.Pairing{Player1ID: 3, Player1Name: "C", Player2ID: 4, Player2Name: "D"}, pairings[1])
	assert.Equal(t, models.Pairing{Player1ID: 5, Player1Name: "E", Player2ID: 6, Player2Name: "F"}, pairings[2])
}

func TestSwissPairingGenerator_EveryPlayerExactlyOnce(t *testing.T) {
	gen := NewSwissPairingGenerator()
	standings := standingsOf(5, 4, 4, 3, 3, 3, 2, 1, 1, 0)

	pairings, err := gen.GeneratePairings(context.Background(), standings)
	require.NoError(t, err)
	require.Len(t, pairings, len(standings)/2)

	seen := make(map[int]int)
	for _, p := range pairings {
		seen[p.Player1ID]++
		seen[p.Player2ID]++
	}
	assert.Len(t, seen, len(standings))
	for id, n := range seen {
		assert.Equal(t, 1, n, "player %d paired %d times", id, n)
	}
}

func TestSwissPairingGenerator_OddCountFails(t *testing.T) {
	gen := NewSwissPairingGenerator()

	pairings, err := gen.GeneratePairings(context.Background(), standingsOf(1, 1, 0))
	assert.ErrorIs(t, err, ErrOddPlayerCount)
	assert.Nil(t, pairings)

	_, err = gen.GeneratePairings(context.Background(), standingsOf(0))
	assert.ErrorIs(t, err, ErrOddPlayerCount)
}

func TestSwissPairingGenerator_EmptyRoster(t *testing.T) {
	pairings, err := NewSwissPairingGenerator().GeneratePairings(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, pairings)
	assert.Empty(t, pairings)
}

func TestSwissPairingGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSwissPairingGenerator().GeneratePairings(ctx, standingsOf(1, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSwissPairingGenerator_Name(t *testing.T) {
	assert.Equal(t, "Swiss", NewSwissPairingGenerator().GetName())
}
