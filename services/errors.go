package services

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/repositories"
)

var (
	// The store could not be reached; nothing was written.
	ErrDataStoreUnavailable = errors.New("data store unavailable")
	// A statement, scan or commit failed.
	ErrDataStore = errors.New("data store error")

	ErrOddPlayerCount = brackets.ErrOddPlayerCount
	ErrPlayerNotFound = errors.New("player not found")
	ErrSelfMatch      = errors.New("a player cannot play against themselves")

	ErrPublishingDisabled = errors.New("snapshot publishing is not configured")
	ErrSnapshotFailed     = errors.New("failed to publish snapshot")
)

// storeError wraps a repository or driver failure in the matching data store sentinel.
func storeError(op string, err error) error {
	if errors.Is(err, repositories.ErrConnectionFailure) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %s: %w", ErrDataStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDataStore, op, err)
}
