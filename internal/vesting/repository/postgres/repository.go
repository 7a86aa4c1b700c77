// Package postgres persists vesting pools and whitelist entries, keeping
// the claimed/remaining bookkeeping invariants intact under concurrency.
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
	// ErrPoolNotFound reports a missing vesting pool.
	ErrPoolNotFound = errors.New("vesting pool not found")
	// ErrPoolExists reports a second initialize of the same pool.
	ErrPoolExists = errors.New("vesting pool already initialized")
	// ErrEntryNotFound reports a missing whitelist entry.
	ErrEntryNotFound = errors.New("whitelist entry not found")
	// ErrEntryExists reports a duplicate whitelist add.
	ErrEntryExists = errors.New("whitelist entry already exists")
	// ErrInvariantViolated reports a claim that would break
	// claimed+remaining==total or drive a balance negative.
	ErrInvariantViolated = errors.New("claim would violate allocation invariant")
	// ErrStaleWithdrawTime reports a claim timestamped before the entry's
	// last withdraw; the last-withdraw time only moves forward.
	ErrStaleWithdrawTime = errors.New("claim timestamp precedes last withdraw")
)

// Repository stores vesting state in PostgreSQL.
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
