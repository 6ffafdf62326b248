package db

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// Error kinds surfaced by the operations in this package. Callers branch on
// them with errors.Is; the wrapping message carries the specifics.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrDuplicate         = errors.New("already exists")
	ErrInconsistentState = errors.New("inconsistent state")
)

// uniqueViolation reports whether err is a SQLite unique-constraint failure,
// e.g. a username or email collision.
func uniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// foreignKeyViolation reports whether err is a SQLite foreign-key failure,
// e.g. a team reference to a missing row.
func foreignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
