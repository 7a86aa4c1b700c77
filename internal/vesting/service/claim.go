// Package service orchestrates vesting claims: the pure engine decides,
// the submitter moves tokens, the repository settles the bookkeeping, and
// every settled claim lands in the audit log.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/engine"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

// NotEligibleError carries the full eligibility verdict for a rejected claim.
type NotEligibleError struct {
	Verdict engine.Eligibility
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("claim not eligible: %s", e.Verdict.Message)
}

// ClaimResult reports one settled claim.
type ClaimResult struct {
	Amount        model.TokenAmount `json:"amount"`
	Signature     string            `json:"signature"`
	NextClaimUnix int64             `json:"nextClaimUnix"`
}

// ClaimService runs the daily claim flow for whitelisted users.
type ClaimService struct {
	repo      VestingRepository
	submitter ClaimSubmitter
	audit     AuditSink
	logger    *zap.Logger
	now       func() time.Time
}

// NewClaimService builds a ClaimService.
func NewClaimService(repo VestingRepository, submitter ClaimSubmitter, auditSink AuditSink, logger *zap.Logger) (*ClaimService, error) {
	if repo == nil {
		return nil, errors.New("vesting repository is required")
	}
	if submitter == nil {
		return nil, errors.New("claim submitter is required")
	}
	if auditSink == nil {
		return nil, errors.New("audit sink is required")
	}
	return &ClaimService{
		repo:      repo,
		submitter: submitter,
		audit:     auditSink,
		logger:    logger.Named("claimService"),
		now:       time.Now,
	}, nil
}

func (s *ClaimService) snapshots(ctx context.Context, poolID, address string) (*model.VestingAccount, *model.WhitelistEntry, error) {
	pool, err := s.repo.GetPool(ctx, poolID)
	if err != nil {
		return nil, nil, fmt.Errorf("get pool %s: %w", poolID, err)
	}
	entry, err := s.repo.GetWhitelistEntry(ctx, poolID, address)
	if err != nil {
		return nil, nil, fmt.Errorf("get whitelist entry %s/%s: %w", poolID, address, err)
	}
	return pool, entry, nil
}

// Eligibility reports whether the user could claim right now, and how much.
func (s *ClaimService) Eligibility(ctx context.Context, poolID, address string) (engine.Eligibility, error) {
	pool, entry, err := s.snapshots(ctx, poolID, address)
	if err != nil {
		return engine.Eligibility{}, err
	}
	return engine.CheckClaimEligibility(pool, entry, s.now()), nil
}

// NextClaim returns the unix time of the user's next possible claim.
func (s *ClaimService) NextClaim(ctx context.Context, poolID, address string) (int64, error) {
	pool, entry, err := s.snapshots(ctx, poolID, address)
	if err != nil {
		return 0, err
	}
	return engine.NextClaimUnix(pool, entry, s.now()), nil
}

// Claim runs the full flow: re-check eligibility on fresh state, submit the
// transfer, settle the bookkeeping transactionally and audit the settlement.
// A failed submission records nothing; the user retries the same day.
func (s *ClaimService) Claim(ctx context.Context, poolID, address string) (ClaimResult, error) {
	pool, entry, err := s.snapshots(ctx, poolID, address)
	if err != nil {
		return ClaimResult{}, err
	}

	now := s.now()
	verdict := engine.CheckClaimEligibility(pool, entry, now)
	if !verdict.Eligible {
		return ClaimResult{}, &NotEligibleError{Verdict: verdict}
	}

	signature, err := s.submitter.Submit(ctx, poolID, address, verdict.Amount)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("submit claim %s/%s: %w", poolID, address, err)
	}

	if err := s.repo.ApplyClaim(ctx, poolID, address, verdict.Amount, now); err != nil {
		// Tokens moved but bookkeeping failed. Surface loudly; the audit log
		// plus the signature make this reconcilable.
		s.logger.Error("claim settled on-chain but bookkeeping failed",
			zap.String("pool", poolID),
			zap.String("address", address),
			zap.String("amount", verdict.Amount.String()),
			zap.String("signature", signature),
			zap.Error(err),
		)
		return ClaimResult{}, fmt.Errorf("settle claim %s/%s: %w", poolID, address, err)
	}

	_ = s.audit.Record(ctx, audit.Event{
		Type:       audit.EventClaimSettled,
		Subject:    poolID,
		Actor:      address,
		Operation:  "claim",
		Amount:     verdict.Amount.String(),
		OccurredAt: now.UTC(),
	})

	claimed := now
	entry.LastWithdrawAt = &claimed
	next := engine.NextClaimUnix(pool, entry, now)

	s.logger.Info("claim settled",
		zap.String("pool", poolID),
		zap.String("address", address),
		zap.String("amount", verdict.Amount.String()),
		zap.String("signature", signature),
	)
	return ClaimResult{
		Amount:        verdict.Amount,
		Signature:     signature,
		NextClaimUnix: next,
	}, nil
}
