package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
	"golang.org/x/sync/errgroup"
)

const (
	snapshotPrefix    = "snapshots/"
	latestSnapshotKey = snapshotPrefix + "latest.json"
)

// SnapshotService publishes the roster and next-round pairings to object storage.
type SnapshotService interface {
	Publish(ctx context.Context) (*models.RoundSnapshot, error)
}

type snapshotService struct {
	tournament TournamentService
	uploader   storage.FileUploader
	logger     *slog.Logger
	now        func() time.Time
}

// NewSnapshotService returns a service whose Publish fails with ErrPublishingDisabled when uploader is nil.
func NewSnapshotService(tournament TournamentService, uploader storage.FileUploader, logger *slog.Logger) SnapshotService {
	if logger == nil {
		logger = slog.Default()
	}
	return &snapshotService{
		tournament: tournament,
		uploader:   uploader,
		logger:     logger,
		now:        time.Now,
	}
}

// Publish uploads the snapshot under a timestamped key and as snapshots/latest.json.
// An odd roster still publishes, with the pairing error recorded instead of pairings.
func (s *snapshotService) Publish(ctx context.Context) (*models.RoundSnapshot, error) {
	if s.uploader == nil {
		return nil, ErrPublishingDisabled
	}

	var (
		players    []models.Player
		pairings   []models.Pairing
		pairingErr string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.tournament.Players(gCtx)
		if err != nil {
			return fmt.Errorf("load players: %w", err)
		}
		players = list
		return nil
	})
	g.Go(func() error {
		round, err := s.tournament.SwissPairings(gCtx)
		if err != nil {
			if errors.Is(err, ErrOddPlayerCount) {
				pairingErr = err.Error()
				return nil
			}
			return fmt.Errorf("build pairings: %w", err)
		}
		pairings = round
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to collect snapshot data", slog.Any("error", err))
		return nil, err
	}

	snapshot := &models.RoundSnapshot{
		GeneratedAt:  s.now().UTC(),
		PlayerCount:  len(players),
		Players:      players,
		Pairings:     pairings,
		PairingError: pairingErr,
	}

	body, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrSnapshotFailed, err)
	}

	key := fmt.Sprintf("%s%d.json", snapshotPrefix, snapshot.GeneratedAt.UnixNano())
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotFailed, err)
	}
	if _, err := s.uploader.Upload(ctx, latestSnapshotKey, "application/json", bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("%w: latest: %w", ErrSnapshotFailed, err)
	}

	snapshot.Key = result.Key
	snapshot.URL = result.Location
	s.logger.InfoContext(ctx, "snapshot published",
		slog.String("key", snapshot.Key), slog.Int("players", snapshot.PlayerCount), slog.Int("pairings", len(pairings)))
	return snapshot, nil
}
