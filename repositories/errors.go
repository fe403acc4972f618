package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnectionFailure   = errors.New("database connection failure")
)

// Postgres SQLSTATE codes the repositories care about.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
	pqConnectionClass     = "08"
)

// translateError maps driver specific failures onto the package sentinels,
// keeping the original error in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code.Class() == pqConnectionClass:
			return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
		case pqErr.Code == pqForeignKeyViolation, pqErr.Code == pqUniqueViolation, pqErr.Code == pqCheckViolation:
			return fmt.Errorf("%w (%s): %w", ErrConstraintViolation, pqErr.Constraint, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrConstraint:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
	}
	return err
}
