package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/swiss-tournament/models"
)

// PlayerRepository reads and writes players and their counters.
// Every method runs on the executor it is given so callers control connection and transaction scope.
type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	ListByWins(ctx context.Context, exec SQLExecutor) ([]models.Player, error)
	RecordWin(ctx context.Context, exec SQLExecutor, playerID int) error
	RecordLoss(ctx context.Context, exec SQLExecutor, playerID int) error
	ResetStats(ctx context.Context, exec SQLExecutor) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

// The statements only use $N placeholders in order of first appearance,
// which both lib/pq and go-sqlite3 bind positionally.
type sqlPlayerRepository struct{}

func NewSQLPlayerRepository() PlayerRepository {
	return &sqlPlayerRepository{}
}

const selectPlayerColumns = `
	SELECT p.id, p.player_name, s.matches_played, s.wins, s.losses, s.points, p.created_at
	FROM players p
	JOIN player_stats s ON s.player_id = p.id`

// Create inserts the player row and its zeroed counters. Run it inside a transaction.
func (r *sqlPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	query := `INSERT INTO players (player_name) VALUES ($1) RETURNING id`
	if err := exec.QueryRowContext(ctx, query, player.Name).Scan(&player.ID); err != nil {
		return translateError(err)
	}

	query = `
		INSERT INTO player_stats (player_id, matches_played, wins, losses, points)
		VALUES ($1, 0, 0, 0, 0)`
	if _, err := exec.ExecContext(ctx, query, player.ID); err != nil {
		return translateError(err)
	}

	player.MatchesPlayed = 0
	player.Wins = 0
	player.Losses = 0
	player.Points = 0
	return nil
}

func (r *sqlPlayerRepository) scanPlayer(rowScanner interface{ Scan(...interface{}) error }) (*models.Player, error) {
	var p models.Player
	err := rowScanner.Scan(&p.ID, &p.Name, &p.MatchesPlayed, &p.Wins, &p.Losses, &p.Points, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *sqlPlayerRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error) {
	query := selectPlayerColumns + ` WHERE p.id = $1`
	return r.scanPlayer(exec.QueryRowContext(ctx, query, id))
}

func (r *sqlPlayerRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	if err := exec.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// ListByWins returns every player ordered by wins descending, ties broken by id (registration order).
func (r *sqlPlayerRepository) ListByWins(ctx context.Context, exec SQLExecutor) ([]models.Player, error) {
	query := selectPlayerColumns + ` ORDER BY s.wins DESC, p.id ASC`

	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		p, errScan := r.scanPlayer(rows)
		if errScan != nil {
			return nil, errScan
		}
		players = append(players, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return players, nil
}

func (r *sqlPlayerRepository) RecordWin(ctx context.Context, exec SQLExecutor, playerID int) error {
	query := `
		UPDATE player_stats
		SET matches_played = matches_played + 1,
		    wins = wins + 1,
		    points = points + $1
		WHERE player_id = $2`
	result, err := exec.ExecContext(ctx, query, models.PointsPerWin, playerID)
	if err != nil {
		return translateError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *sqlPlayerRepository) RecordLoss(ctx context.Context, exec SQLExecutor, playerID int) error {
	query := `
		UPDATE player_stats
		SET matches_played = matches_played + 1,
		    losses = losses + 1
		WHERE player_id = $1`
	result, err := exec.ExecContext(ctx, query, playerID)
	if err != nil {
		return translateError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *sqlPlayerRepository) ResetStats(ctx context.Context, exec SQLExecutor) error {
	query := `UPDATE player_stats SET matches_played = 0, wins = 0, losses = 0, points = 0`
	_, err := exec.ExecContext(ctx, query)
	return translateError(err)
}

// DeleteAll removes counters before players so the foreign key never blocks. Run it inside a transaction.
func (r *sqlPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM player_stats`); err != nil {
		return translateError(err)
	}
	_, err := exec.ExecContext(ctx, `DELETE FROM players`)
	return translateError(err)
}
