package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
)

// app holds the wired dependencies for one command invocation.
type app struct {
	db         *sql.DB
	tournament services.TournamentService
	snapshots  services.SnapshotService
	logger     *slog.Logger
}

// openApp connects to the database and wires the services. notifier may be nil.
func openApp(ctx context.Context, opts *rootOptions, notifier services.EventNotifier) (*app, error) {
	cfg := opts.cfg
	logger := opts.logger

	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", services.ErrDataStoreUnavailable, err)
	}
	logger.Debug("database connection established", slog.String("driver", cfg.DatabaseDriver))

	r2Config := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	var uploader storage.FileUploader
	if r2Config.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, r2Config)
		if err != nil {
			_ = dbConn.Close()
			return nil, fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Debug("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	}

	tournament := services.NewTournamentService(
		dbConn,
		repositories.NewSQLPlayerRepository(),
		brackets.NewSwissPairingGenerator(),
		notifier,
		logger,
	)

	return &app{
		db:         dbConn,
		tournament: tournament,
		snapshots:  services.NewSnapshotService(tournament, uploader, logger),
		logger:     logger,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database connection", slog.Any("error", err))
	}
}

// withApp opens the app for the duration of fn.
func withApp(ctx context.Context, opts *rootOptions, fn func(a *app) error) error {
	a, err := openApp(ctx, opts, nil)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
