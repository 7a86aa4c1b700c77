package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/clock"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/engine"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/repository/postgres"
)

// Scheduler drives one automatic stage (result declaration or completion):
// it polls for due rounds and pushes each through the same transition path
// the API uses.
type Scheduler struct {
	logger            *zap.Logger
	metrics           SchedulerMetrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	idleSleepDuration time.Duration
	fetcher           DueRoundFetcher
	applier           TransitionApplier
}

func newScheduler(fetcher DueRoundFetcher, applier TransitionApplier, metrics SchedulerMetrics, logger *zap.Logger) (*Scheduler, error) {
	if metrics == nil {
		return nil, errors.New("scheduler metrics is required")
	}
	return &Scheduler{
		logger:            logger,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		idleSleepDuration: idleSleepDuration,
		fetcher:           fetcher,
		applier:           applier,
	}, nil
}

// NewDeclarationScheduler builds the stage that declares results for rounds
// in automatic mode once their declaration delay has elapsed.
func NewDeclarationScheduler(repo RoundRepository, svc *Service, metrics SchedulerMetrics, logger *zap.Logger) (*Scheduler, error) {
	logger = logger.Named("declarationScheduler")
	return newScheduler(
		&dueFetcher{list: repo.ListDueForDeclaration, now: time.Now},
		&transitionApplier{svc: svc, op: model.OpDeclareResults},
		metrics,
		logger,
	)
}

// NewCompletionScheduler builds the stage that completes rounds once their
// completion delay after declaration has elapsed.
func NewCompletionScheduler(repo RoundRepository, svc *Service, metrics SchedulerMetrics, logger *zap.Logger) (*Scheduler, error) {
	logger = logger.Named("completionScheduler")
	return newScheduler(
		&dueFetcher{list: repo.ListDueForCompletion, now: time.Now},
		&transitionApplier{svc: svc, op: model.OpInstantComplete},
		metrics,
		logger,
	)
}

// Run polls until the context is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Scheduler) run(ctx context.Context) error {
	started := time.Now()
	due, err := s.fetcher.Fetch(ctx)
	s.metrics.ObserveFetchDue(err, started)
	if err != nil {
		s.logger.Error("fetch due rounds failed", zap.Error(err))
		return err
	}

	if len(due) == 0 {
		s.logger.Debug("no due rounds; sleeping", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("processing due rounds", zap.Int("count", len(due)))
	started = time.Now()
	var firstErr error
	for _, round := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		roundStarted := time.Now()
		err := s.applier.Apply(ctx, round)
		s.metrics.ObserveProcessRound(err, roundStarted)
		if err != nil {
			// conflicts mean another actor already moved the round; skip it
			if errors.Is(err, postgres.ErrStatusConflict) || errors.Is(err, postgres.ErrNotFound) {
				s.logger.Debug("round moved concurrently, skipping",
					zap.Uint64("number", round.Number), zap.Error(err))
				continue
			}
			s.logger.Error("apply transition failed",
				zap.Uint64("number", round.Number), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	s.metrics.ObserveProcessBatch(firstErr, len(due), started)
	if firstErr != nil {
		return firstErr
	}

	return s.sleep(ctx, s.sleepDuration)
}

type dueFetcher struct {
	list func(ctx context.Context, now time.Time) ([]model.Round, error)
	now  func() time.Time
}

func (f *dueFetcher) Fetch(ctx context.Context) ([]model.Round, error) {
	return f.list(ctx, f.now())
}

type transitionApplier struct {
	svc *Service
	op  model.Operation
}

func (a *transitionApplier) Apply(ctx context.Context, round model.Round) error {
	_, err := a.svc.Transition(ctx, round.Number, a.op, schedulerActor, engine.Params{})
	return err
}
