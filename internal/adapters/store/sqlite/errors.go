package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

var (
	// ErrConnectionFailed is returned when the database cannot be opened.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrMigrationFailed is returned when schema migrations fail.
	ErrMigrationFailed = errors.New("database migration failed")

	// ErrTxFailed is returned when a transaction cannot begin or commit.
	ErrTxFailed = errors.New("transaction failed")
)

// StoreError wraps a storage failure with the operation and entity involved.
// Err is either a domain sentinel (ErrNotFound, ErrConflict, ErrValidation)
// or one of this package's errors.
type StoreError struct {
	Op      string
	Entity  string
	ID      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %s", e.Op, e.Entity, e.ID, e.Message)
	}
	if e.Entity != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, entity string, id int64, message string, err error) *StoreError {
	var idStr string
	if id > 0 {
		idStr = fmt.Sprintf("%d", id)
	}
	return &StoreError{Op: op, Entity: entity, ID: idStr, Message: message, Err: err}
}

// queryError wraps a driver error that has no domain meaning.
func queryError(op, entity string, id int64, err error) *StoreError {
	return NewStoreError(op, entity, id, err.Error(), fmt.Errorf("%w: %w", domain.ErrUnavailable, err))
}

func isUniqueViolation(err error, table string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+table)
}
