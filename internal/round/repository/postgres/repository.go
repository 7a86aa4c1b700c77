// Package postgres persists rounds and enforces the optimistic status guard
// every transition commits through.
package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes repository call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var (
	// ErrNotFound reports a missing round.
	ErrNotFound = errors.New("round not found")
	// ErrAlreadyExists reports a duplicate round number on create.
	ErrAlreadyExists = errors.New("round already exists")
	// ErrStatusConflict reports that the stored status changed between the
	// caller's snapshot and the commit; the caller must re-fetch and
	// re-validate.
	ErrStatusConflict = errors.New("round status changed concurrently")
)

// Repository stores rounds in PostgreSQL.
type Repository struct {
	db      *gorm.DB
	metrics Metrics
}

// NewRepository wraps an open gorm connection.
func NewRepository(db *gorm.DB, metrics Metrics) (*Repository, error) {
	if db == nil {
		return nil, errors.New("db handle is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	return &Repository{db: db, metrics: metrics}, nil
}
