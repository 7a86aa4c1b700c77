package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/dripplan"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/repository/postgres"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/schedule"
	"github.com/tokenvote-labs/tokenvote-backend/pkg/workerpool"
)

const exportWorkerCount = 8

// AddressPlan is one whitelisted address's full drip schedule.
type AddressPlan struct {
	Address string               `json:"address"`
	Total   model.TokenAmount    `json:"total"`
	Months  []dripplan.MonthPlan `json:"months"`
}

// ExportService renders drip schedules for whole pools or single addresses.
type ExportService struct {
	repo   VestingRepository
	logger *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(repo VestingRepository, logger *zap.Logger) (*ExportService, error) {
	if repo == nil {
		return nil, errors.New("vesting repository is required")
	}
	return &ExportService{
		repo:   repo,
		logger: logger.Named("exportService"),
	}, nil
}

// AddressPlan generates the drip schedule for one address.
func (s *ExportService) AddressPlan(ctx context.Context, poolID, address string) (AddressPlan, error) {
	pool, err := s.repo.GetPool(ctx, poolID)
	if err != nil {
		return AddressPlan{}, fmt.Errorf("get pool %s: %w", poolID, err)
	}
	if pool == nil {
		return AddressPlan{}, postgres.ErrPoolNotFound
	}
	entry, err := s.repo.GetWhitelistEntry(ctx, poolID, address)
	if err != nil {
		return AddressPlan{}, fmt.Errorf("get whitelist entry %s/%s: %w", poolID, address, err)
	}
	if entry == nil {
		return AddressPlan{}, postgres.ErrEntryNotFound
	}
	return buildAddressPlan(pool, *entry)
}

// PoolPlans generates drip schedules for every whitelisted address in a
// pool, fanned out across workers.
func (s *ExportService) PoolPlans(ctx context.Context, poolID string) ([]AddressPlan, error) {
	pool, err := s.repo.GetPool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool %s: %w", poolID, err)
	}
	if pool == nil {
		return nil, postgres.ErrPoolNotFound
	}
	entries, err := s.repo.ListWhitelist(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("list whitelist %s: %w", poolID, err)
	}

	plans, err := workerpool.Map(ctx, exportWorkerCount, entries, func(_ context.Context, entry model.WhitelistEntry) (AddressPlan, error) {
		return buildAddressPlan(pool, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("generated pool drip plans",
		zap.String("pool", poolID),
		zap.Int("addresses", len(plans)),
	)
	return plans, nil
}

// WriteAddressCSV streams one address's schedule as CSV.
func (s *ExportService) WriteAddressCSV(ctx context.Context, w io.Writer, poolID, address string) error {
	plan, err := s.AddressPlan(ctx, poolID, address)
	if err != nil {
		return err
	}
	return dripplan.WriteCSV(w, plan.Months)
}

func buildAddressPlan(pool *model.VestingAccount, entry model.WhitelistEntry) (AddressPlan, error) {
	months, err := dripplan.Generate(entry.Total, pool.StartAt, schedule.DripEntries())
	if err != nil {
		return AddressPlan{}, fmt.Errorf("generate plan for %s: %w", entry.Address, err)
	}
	return AddressPlan{
		Address: entry.Address,
		Total:   entry.Total,
		Months:  months,
	}, nil
}
