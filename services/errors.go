package services

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Error kinds returned by every service. Callers match them with errors.Is;
// the wrapped message carries the scope and ids involved.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// conflictf records the conflict under kind before returning it.
func conflictf(kind, format string, args ...interface{}) error {
	recordWriteConflict(kind)
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// lookupError maps a missing row to ErrNotFound and wraps anything else.
func lookupError(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("%s id=%d", entity, id)
	}
	return fmt.Errorf("failed to load %s id=%d: %w", entity, id, err)
}

// MySQL error numbers raised when another transaction wins the race for the same rows.
// Two writers that both lock an empty range under REPEATABLE READ end in a deadlock
// on insert rather than blocking, so the loser surfaces here.
const (
	mysqlErrDupEntry     = 1062
	mysqlErrLockWaitTime = 1205
	mysqlErrDeadlock     = 1213
)

// writeError reports a lost write race as ErrConflict and wraps any other failure.
func writeError(kind string, err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		recordWriteConflict(kind)
		return fmt.Errorf("%w: %s: concurrent write: %v", ErrConflict, msg, err)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDupEntry, mysqlErrLockWaitTime, mysqlErrDeadlock:
			recordWriteConflict(kind)
			return fmt.Errorf("%w: %s: concurrent write (mysql %d): %s", ErrConflict, msg, myErr.Number, myErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
