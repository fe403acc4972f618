package brackets

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

var ErrOddPlayerCount = errors.New("odd number of players cannot be paired")

type SwissPairingGenerator struct{}

func NewSwissPairingGenerator() PairingGenerator {
	return &SwissPairingGenerator{}
}

func (g *SwissPairingGenerator) GetName() string {
	return "Swiss"
}

// GeneratePairings pairs standings[0] with standings[1], standings[2] with standings[3] and so on.
// The standings must already be ordered by wins; players with equal or adjacent records end up together.
// An odd count is rejected before any pair is built.
func (g *SwissPairingGenerator) GeneratePairings(ctx context.Context, standings []models.Standing) ([]models.Pairing, error) {
	if len(standings)%2 != 0 {
		return nil, fmt.Errorf("%w: %d players registered", ErrOddPlayerCount, len(standings))
	}

	pairings := make([]models.Pairing, 0, len(standings)/2)
	for i := 0; i < len(standings); i += 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p1, p2 := standings[i], standings[i+1]
		pairings = append(pairings, models.Pairing{
			Player1ID:   p1.ID,
			Player1Name: p1.Name,
			Player2ID:   p2.ID,
			Player2Name: p2.Name,
		})
	}
	return pairings, nil
}
