package task

import (
	"context"
	"database/sql/driver"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// do runs op, retrying while it fails with a transient backend error.
func (s *SQLiteStore) do(ctx context.Context, op func() error) error {
	err := retry.Do(
		op,
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
	if err != nil && isTransient(err) {
		return errors.Wrapf(ErrStoreUnavailable, "after %d attempts: %v", s.attempts, err)
	}
	return err
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		}
	}
	return false
}
