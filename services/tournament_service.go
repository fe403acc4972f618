package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type TournamentService interface {
	RegisterPlayer(ctx context.Context, name string) (*models.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	Players(ctx context.Context) ([]models.Player, error)
	Standings(ctx context.Context) ([]models.Standing, error)
	ReportMatch(ctx context.Context, winnerID, loserID int) error
	SwissPairings(ctx context.Context) ([]models.Pairing, error)
	ResetMatches(ctx context.Context) error
	ClearAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

// EventNotifier receives an event after every committed change.
type EventNotifier interface {
	Notify(eventType string, payload interface{})
}

type tournamentService struct {
	conns      db.ConnectionProvider
	playerRepo repositories.PlayerRepository
	pairer     brackets.PairingGenerator
	notifier   EventNotifier
	logger     *slog.Logger
}

// NewTournamentService wires the service. notifier may be nil.
func NewTournamentService(
	conns db.ConnectionProvider,
	playerRepo repositories.PlayerRepository,
	pairer brackets.PairingGenerator,
	notifier EventNotifier,
	logger *slog.Logger,
) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		conns:      conns,
		playerRepo: playerRepo,
		pairer:     pairer,
		notifier:   notifier,
		logger:     logger,
	}
}

// withConn acquires one connection for fn and releases it on every path.
func (s *tournamentService) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.conns.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", ErrDataStoreUnavailable, err)
	}
	defer func() {
		if cErr := conn.Close(); cErr != nil {
			s.logger.WarnContext(ctx, "failed to release database connection", slog.Any("error", cErr))
		}
	}()
	return fn(conn)
}

// inTx runs fn in a transaction on conn. It commits when fn succeeds and rolls back otherwise.
func (s *tournamentService) inTx(ctx context.Context, conn *sql.Conn, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return storeError("begin transaction", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.ErrorContext(ctx, "transaction rollback failed", slog.Any("error", rbErr), slog.Any("cause", err))
			}
		} else if cErr := tx.Commit(); cErr != nil {
			err = storeError("commit transaction", cErr)
		}
	}()
	return fn(tx)
}

func (s *tournamentService) notify(eventType string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(eventType, payload)
	}
}

// RegisterPlayer stores a new player with zeroed counters. The name is stored as given.
func (s *tournamentService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	var created *models.Player
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return s.inTx(ctx, conn, func(tx *sql.Tx) error {
			player := &models.Player{Name: name}
			if err := s.playerRepo.Create(ctx, tx, player); err != nil {
				return storeError("register player", err)
			}
			stored, err := s.playerRepo.GetByID(ctx, tx, player.ID)
			if err != nil {
				return storeError("load registered player", err)
			}
			created = stored
			return nil
		})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register player", slog.String("name", name), slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "player registered", slog.Int("player_id", created.ID), slog.String("name", created.Name))
	s.notify(brackets.EventPlayerRegistered, created)
	return created, nil
}

func (s *tournamentService) CountPlayers(ctx context.Context) (int, error) {
	var count int
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		n, err := s.playerRepo.Count(ctx, conn)
		if err != nil {
			return storeError("count players", err)
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *tournamentService) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	var player *models.Player
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		p, err := s.playerRepo.GetByID(ctx, conn, id)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
			}
			return storeError(fmt.Sprintf("get player %d", id), err)
		}
		player = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// Players returns every player with full counters in standings order.
func (s *tournamentService) Players(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		list, err := s.playerRepo.ListByWins(ctx, conn)
		if err != nil {
			return storeError("list players", err)
		}
		players = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

// Standings lists players by wins descending. Equal win counts keep registration order.
func (s *tournamentService) Standings(ctx context.Context) ([]models.Standing, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	standings := make([]models.Standing, len(players))
	for i, p := range players {
		standings[i] = p.ToStanding()
	}
	return standings, nil
}

// ReportMatch records a win for winnerID and a loss for loserID in a single transaction.
func (s *tournamentService) ReportMatch(ctx context.Context, winnerID, loserID int) error {
	if winnerID == loserID {
		return fmt.Errorf("%w: player %d", ErrSelfMatch, winnerID)
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return s.inTx(ctx, conn, func(tx *sql.Tx) error {
			if err := s.playerRepo.RecordWin(ctx, tx, winnerID); err != nil {
				if errors.Is(err, repositories.ErrPlayerNotFound) {
					return fmt.Errorf("%w: winner %d", ErrPlayerNotFound, winnerID)
				}
				return storeError("record win", err)
			}
			if err := s.playerRepo.RecordLoss(ctx, tx, loserID); err != nil {
				if errors.Is(err, repositories.ErrPlayerNotFound) {
					return fmt.Errorf("%w: loser %d", ErrPlayerNotFound, loserID)
				}
				return storeError("record loss", err)
			}
			return nil
		})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to report match",
			slog.Int("winner_id", winnerID), slog.Int("loser_id", loserID), slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "match reported", slog.Int("winner_id", winnerID), slog.Int("loser_id", loserID))
	s.notify(brackets.EventMatchReported, models.MatchResult{WinnerID: winnerID, LoserID: loserID})
	return nil
}

// SwissPairings pairs adjacent players in the current standings.
// An odd roster fails with ErrOddPlayerCount and no pairs.
func (s *tournamentService) SwissPairings(ctx context.Context) ([]models.Pairing, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}

	pairings, err := s.pairer.GeneratePairings(ctx, standings)
	if err != nil {
		if errors.Is(err, ErrOddPlayerCount) {
			s.logger.WarnContext(ctx, "pairing rejected", slog.Int("players", len(standings)))
		}
		return nil, err
	}
	return pairings, nil
}

// ResetMatches zeroes every counter and keeps the players.
func (s *tournamentService) ResetMatches(ctx context.Context) error {
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		if err := s.playerRepo.ResetStats(ctx, conn); err != nil {
			return storeError("reset matches", err)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to reset matches", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "match records reset")
	s.notify(brackets.EventMatchesReset, nil)
	return nil
}

// ClearAll deletes every player and counter row.
func (s *tournamentService) ClearAll(ctx context.Context) error {
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return s.inTx(ctx, conn, func(tx *sql.Tx) error {
			if err := s.playerRepo.DeleteAll(ctx, tx); err != nil {
				return storeError("delete players", err)
			}
			return nil
		})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to clear players", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "all players removed")
	s.notify(brackets.EventPlayersCleared, nil)
	return nil
}

func (s *tournamentService) Ping(ctx context.Context) error {
	return s.withConn(ctx, func(conn *sql.Conn) error {
		if err := conn.PingContext(ctx); err != nil {
			return fmt.Errorf("%w: ping: %w", ErrDataStoreUnavailable, err)
		}
		return nil
	})
}
