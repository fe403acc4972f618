package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Dosada05/swiss-tournament/db/dbtest"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/suite"
)

type PlayerRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo PlayerRepository
	ctx  context.Context
}

func TestPlayerRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositorySuite))
}

func (s *PlayerRepositorySuite) SetupTest() {
	s.db = dbtest.NewSQLite(s.T())
	s.repo = NewSQLPlayerRepository()
	s.ctx = context.Background()
}

func (s *PlayerRepositorySuite) create(name string) *models.Player {
	player := &models.Player{Name: name}
	s.Require().NoError(s.repo.Create(s.ctx, s.db, player))
	return player
}

func (s *PlayerRepositorySuite) TestCreateAssignsIDAndZeroCounters() {
	alice := s.create("Alice")
	bob := s.create("Bob")

	s.Positive(alice.ID)
	s.Greater(bob.ID, alice.ID)

	stored, err := s.repo.GetByID(s.ctx, s.db, alice.ID)
	s.Require().NoError(err)
	s.Equal("Alice", stored.Name)
	s.Zero(stored.MatchesPlayed)
	s.Zero(stored.Wins)
	s.Zero(stored.Losses)
	s.Zero(stored.Points)
	s.False(stored.CreatedAt.IsZero())
}

func (s *PlayerRepositorySuite) TestDuplicateNamesAreAllowed() {
	first := s.create("Sam")
	second := s.create("Sam")

	s.NotEqual(first.ID, second.ID)
	count, err := s.repo.Count(s.ctx, s.db)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *PlayerRepositorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(s.ctx, s.db, 999)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *PlayerRepositorySuite) TestRecordWinAndLoss() {
	winner := s.create("Winner")
	loser := s.create("Loser")

	s.Require().NoError(s.repo.RecordWin(s.ctx, s.db, winner.ID))
	s.Require().NoError(s.repo.RecordLoss(s.ctx, s.db, loser.ID))

	w, err := s.repo.GetByID(s.ctx, s.db, winner.ID)
	s.Require().NoError(err)
	s.Equal(1, w.Wins)
	s.Equal(0, w.Losses)
	s.Equal(1, w.MatchesPlayed)
	s.Equal(models.PointsPerWin, w.Points)

	l, err := s.repo.GetByID(s.ctx, s.db, loser.ID)
	s.Require().NoError(err)
	s.Equal(0, l.Wins)
	s.Equal(1, l.Losses)
	s.Equal(1, l.MatchesPlayed)
	s.Equal(0, l.Points)
}

func (s *PlayerRepositorySuite) TestRecordUnknownPlayer() {
	s.ErrorIs(s.repo.RecordWin(s.ctx, s.db, 42), ErrPlayerNotFound)
	s.ErrorIs(s.repo.RecordLoss(s.ctx, s.db, 42), ErrPlayerNotFound)
}

func (s *PlayerRepositorySuite) TestListByWinsOrdersByWinsThenID() {
	a := s.create("A")
	b := s.create("B")
	c := s.create("C")
	d := s.create("D")

	s.Require().NoError(s.repo.RecordWin(s.ctx, s.db, c.ID))
	s.Require().NoError(s.repo.RecordLoss(s.ctx, s.db, a.ID))
	s.Require().NoError(s.repo.RecordWin(s.ctx, s.db, d.ID))
	s.Require().NoError(s.repo.RecordLoss(s.ctx, s.db, b.ID))

	players, err := s.repo.ListByWins(s.ctx, s.db)
	s.Require().NoError(err)
	s.Require().Len(players, 4)

	ids := []int{players[0].ID, players[1].ID, players[2].ID, players[3].ID}
	s.Equal([]int{c.ID, d.ID, a.ID, b.ID}, ids)
}

func (s *PlayerRepositorySuite) TestListByWinsEmpty() {
	players, err := s.repo.ListByWins(s.ctx, s.db)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *PlayerRepositorySuite) TestResetStatsKeepsPlayers() {
	a := s.create("A")
	b := s.create("B")
	s.Require().NoError(s.repo.RecordWin(s.ctx, s.db, a.ID))
	s.Require().NoError(s.repo.RecordLoss(s.ctx, s.db, b.ID))

	s.Require().NoError(s.repo.ResetStats(s.ctx, s.db))

	players, err := s.repo.ListByWins(s.ctx, s.db)
	s.Require().NoError(err)
	s.Len(players, 2)
	for _, p := range players {
		s.Zero(p.Wins)
		s.Zero(p.Losses)
		s.Zero(p.MatchesPlayed)
		s.Zero(p.Points)
	}
}

func (s *PlayerRepositorySuite) TestDeleteAll() {
	s.create("A")
	s.create("B")

	s.Require().NoError(s.repo.DeleteAll(s.ctx, s.db))

	count, err := s.repo.Count(s.ctx, s.db)
	s.Require().NoError(err)
	s.Zero(count)

	var stats int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM player_stats`).Scan(&stats))
	s.Zero(stats)
}

func (s *PlayerRepositorySuite) TestCreateInsideRolledBackTransaction() {
	tx, err := s.db.BeginTx(s.ctx, nil)
	s.Require().NoError(err)

	player := &models.Player{Name: "Ghost"}
	s.Require().NoError(s.repo.Create(s.ctx, tx, player))
	s.Require().NoError(tx.Rollback())

	count, err := s.repo.Count(s.ctx, s.db)
	s.Require().NoError(err)
	s.Zero(count)
}
