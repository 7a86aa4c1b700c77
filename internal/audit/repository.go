package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes event log call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository appends audit events to ClickHouse.
type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

// NewRepository opens a ClickHouse connection from a DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// InsertEvents stores a batch of audit events.
func (r *Repository) InsertEvents(ctx context.Context, events []Event) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("insert_events", err, start) }()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO audit_events (
	type,
	subject,
	actor,
	operation,
	from_status,
	to_status,
	amount,
	occurred_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, ev := range events {
		if err = batch.Append(
			string(ev.Type),
			ev.Subject,
			ev.Actor,
			ev.Operation,
			ev.FromStatus,
			ev.ToStatus,
			ev.Amount,
			ev.OccurredAt,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}

// EventsBySubject reads back the ordered history for one subject, newest
// first, capped at limit.
func (r *Repository) EventsBySubject(ctx context.Context, subject string, limit uint64) ([]Event, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("events_by_subject", err, start) }()

	const query = `
SELECT
	type,
	subject,
	actor,
	operation,
	from_status,
	to_status,
	amount,
	occurred_at
FROM audit_events
WHERE subject = ?
ORDER BY occurred_at DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, subject, limit)
	if err != nil {
		err = fmt.Errorf("select events: %w", err)
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev  Event
			typ string
		)
		if err = rows.Scan(&typ, &ev.Subject, &ev.Actor, &ev.Operation, &ev.FromStatus, &ev.ToStatus, &ev.Amount, &ev.OccurredAt); err != nil {
			err = fmt.Errorf("scan event: %w", err)
			return nil, err
		}
		ev.Type = EventType(typ)
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate events: %w", err)
		return nil, err
	}
	return events, nil
}
