// Package service orchestrates round lifecycle operations: every state
// change fetches a fresh snapshot, runs the transition engine against it and
// commits with an expected-status guard, so concurrent admins cannot clobber
// each other.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/engine"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
)

// Service applies round operations against the repository.
type Service struct {
	repo    RoundRepository
	tallies TallySource
	audit   AuditSink
	logger  *zap.Logger
	now     func() time.Time
}

// NewService builds a Service. tallies may be nil when every declaration
// carries its own tallies.
func NewService(repo RoundRepository, tallies TallySource, auditSink AuditSink, logger *zap.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("round repository is required")
	}
	if auditSink == nil {
		return nil, errors.New("audit sink is required")
	}
	return &Service{
		repo:    repo,
		tallies: tallies,
		audit:   auditSink,
		logger:  logger.Named("roundService"),
		now:     time.Now,
	}, nil
}

// Create validates boundaries and stores a new round in scheduled status.
func (s *Service) Create(ctx context.Context, round model.Round) (model.Round, error) {
	if err := engine.ValidateBoundaries(round.NominationStart, round.NominationEnd, round.VotingStart, round.VotingEnd); err != nil {
		return model.Round{}, err
	}
	round.Status = model.StatusScheduled
	if round.DeclareMode == "" {
		round.DeclareMode = model.DeclareManual
	}
	round.Results = nil
	round.ResultsDeclaredAt = nil

	if err := s.repo.Create(ctx, round); err != nil {
		return model.Round{}, fmt.Errorf("create round %d: %w", round.Number, err)
	}

	s.logger.Info("round created",
		zap.Uint64("number", round.Number),
		zap.Time("nomination_start", round.NominationStart),
		zap.Time("voting_end", round.VotingEnd),
	)
	return round, nil
}

// Get returns one round by number.
func (s *Service) Get(ctx context.Context, number uint64) (model.Round, error) {
	return s.repo.Get(ctx, number)
}

// List returns all rounds ordered by number.
func (s *Service) List(ctx context.Context) ([]model.Round, error) {
	return s.repo.List(ctx)
}

// EditRequest carries the fields an admin may change while a round is
// editable.
type EditRequest struct {
	Name            string
	NominationStart time.Time
	NominationEnd   time.Time
	VotingStart     time.Time
	VotingEnd       time.Time
	NominationFee   uint64
	VotingFee       uint64

	DeclareMode             model.DeclareMode
	DeclarationDelayMinutes uint32
	CompletionDelayMinutes  uint32
	Recurrence              *model.Recurrence
}

// Edit replaces the editable fields of a round. The stored status must be
// scheduled or canceled and must not change between read and commit.
func (s *Service) Edit(ctx context.Context, number uint64, req EditRequest) (model.Round, error) {
	round, err := s.repo.Get(ctx, number)
	if err != nil {
		return model.Round{}, err
	}

	if err := engine.ValidateEdit(round, req.NominationStart, req.NominationEnd, req.VotingStart, req.VotingEnd); err != nil {
		return model.Round{}, err
	}

	expected := round.Status
	round.Name = req.Name
	round.NominationStart = req.NominationStart
	round.NominationEnd = req.NominationEnd
	round.VotingStart = req.VotingStart
	round.VotingEnd = req.VotingEnd
	round.NominationFee = req.NominationFee
	round.VotingFee = req.VotingFee
	if req.DeclareMode != "" {
		round.DeclareMode = req.DeclareMode
	}
	round.DeclarationDelayMinutes = req.DeclarationDelayMinutes
	round.CompletionDelayMinutes = req.CompletionDelayMinutes
	round.Recurrence = req.Recurrence

	if err := s.repo.UpdateGuarded(ctx, round, expected); err != nil {
		return model.Round{}, fmt.Errorf("edit round %d: %w", number, err)
	}
	return round, nil
}

// Transition applies one operation to a round. The fresh snapshot is
// validated by the engine and committed only if the stored status still
// matches; a conflict surfaces as the repository's status-conflict error and
// the caller retries with fresh state.
func (s *Service) Transition(ctx context.Context, number uint64, op model.Operation, actor string, params engine.Params) (model.Round, error) {
	round, err := s.repo.Get(ctx, number)
	if err != nil {
		return model.Round{}, err
	}

	if op == model.OpDeclareResults && len(params.Tallies) == 0 && s.tallies != nil {
		params.Tallies, err = s.tallies.Tallies(ctx, number)
		if err != nil {
			return model.Round{}, fmt.Errorf("fetch tallies for round %d: %w", number, err)
		}
	}

	updated, err := engine.Apply(round, op, s.now(), params)
	if err != nil {
		return model.Round{}, err
	}

	if op == model.OpDelete {
		if err := s.repo.Delete(ctx, number); err != nil {
			return model.Round{}, fmt.Errorf("delete round %d: %w", number, err)
		}
	} else {
		if err := s.repo.UpdateGuarded(ctx, updated, round.Status); err != nil {
			return model.Round{}, fmt.Errorf("apply %s to round %d: %w", op, number, err)
		}
	}

	_ = s.audit.Record(ctx, audit.Event{
		Type:       audit.EventRoundTransition,
		Subject:    strconv.FormatUint(number, 10),
		Actor:      actor,
		Operation:  string(op),
		FromStatus: string(round.Status),
		ToStatus:   string(updated.Status),
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("round transition applied",
		zap.Uint64("number", number),
		zap.String("operation", string(op)),
		zap.String("from", string(round.Status)),
		zap.String("to", string(updated.Status)),
		zap.String("actor", actor),
	)
	return updated, nil
}
