package service

import (
	"context"
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RoundRepository interface {
		Create(ctx context.Context, round model.Round) error
		Get(ctx context.Context, number uint64) (model.Round, error)
		List(ctx context.Context) ([]model.Round, error)
		UpdateGuarded(ctx context.Context, round model.Round, expected model.Status) error
		Delete(ctx context.Context, number uint64) error
		ListDueForDeclaration(ctx context.Context, now time.Time) ([]model.Round, error)
		ListDueForCompletion(ctx context.Context, now time.Time) ([]model.Round, error)
	}
	TallySource interface {
		Tallies(ctx context.Context, roundNumber uint64) ([]model.TokenTally, error)
	}
	AuditSink interface {
		Record(ctx context.Context, ev audit.Event) error
	}
	DueRoundFetcher interface {
		Fetch(ctx context.Context) ([]model.Round, error)
	}
	TransitionApplier interface {
		Apply(ctx context.Context, round model.Round) error
	}
	SchedulerMetrics interface {
		ObserveFetchDue(err error, started time.Time)
		ObserveProcessBatch(err error, rounds int, started time.Time)
		ObserveProcessRound(err error, started time.Time)
	}
)
