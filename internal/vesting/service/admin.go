package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

// AdminService manages pools and whitelist membership.
type AdminService struct {
	repo   VestingRepository
	audit  AuditSink
	logger *zap.Logger
	now    func() time.Time
}

// NewAdminService builds an AdminService.
func NewAdminService(repo VestingRepository, auditSink AuditSink, logger *zap.Logger) (*AdminService, error) {
	if repo == nil {
		return nil, errors.New("vesting repository is required")
	}
	if auditSink == nil {
		return nil, errors.New("audit sink is required")
	}
	return &AdminService{
		repo:   repo,
		audit:  auditSink,
		logger: logger.Named("vestingAdmin"),
		now:    time.Now,
	}, nil
}

// InitPool creates a pool once; re-initialization fails.
func (s *AdminService) InitPool(ctx context.Context, pool model.VestingAccount) error {
	if pool.Remaining.IsZero() {
		pool.Remaining = pool.Total
	}
	if err := s.repo.InitPool(ctx, pool); err != nil {
		return fmt.Errorf("init pool %s: %w", pool.PoolID, err)
	}
	s.logger.Info("pool initialized",
		zap.String("pool", pool.PoolID),
		zap.String("total", pool.Total.String()),
		zap.Time("start_at", pool.StartAt),
	)
	return nil
}

// GetPool returns one pool.
func (s *AdminService) GetPool(ctx context.Context, poolID string) (*model.VestingAccount, error) {
	pool, err := s.repo.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// AddWhitelistEntry grants an address an allocation within a pool.
func (s *AdminService) AddWhitelistEntry(ctx context.Context, poolID, address, actor string, total model.TokenAmount) error {
	if err := s.repo.AddWhitelistEntry(ctx, poolID, address, total); err != nil {
		return fmt.Errorf("add whitelist entry %s/%s: %w", poolID, address, err)
	}
	_ = s.audit.Record(ctx, audit.Event{
		Type:       audit.EventWhitelistChange,
		Subject:    poolID,
		Actor:      actor,
		Operation:  "whitelist_add",
		Amount:     total.String(),
		OccurredAt: s.now().UTC(),
	})
	return nil
}

// RemoveWhitelistEntry revokes an address's allocation.
func (s *AdminService) RemoveWhitelistEntry(ctx context.Context, poolID, address, actor string) error {
	if err := s.repo.RemoveWhitelistEntry(ctx, poolID, address); err != nil {
		return fmt.Errorf("remove whitelist entry %s/%s: %w", poolID, address, err)
	}
	_ = s.audit.Record(ctx, audit.Event{
		Type:       audit.EventWhitelistChange,
		Subject:    poolID,
		Actor:      actor,
		Operation:  "whitelist_remove",
		OccurredAt: s.now().UTC(),
	})
	return nil
}

// ListWhitelist returns all entries for a pool.
func (s *AdminService) ListWhitelist(ctx context.Context, poolID string) ([]model.WhitelistEntry, error) {
	return s.repo.ListWhitelist(ctx, poolID)
}
