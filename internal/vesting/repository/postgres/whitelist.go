package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

// AddWhitelistEntry registers a user's allocation within a pool. The entry
// starts with nothing claimed and remaining equal to total.
func (r *Repository) AddWhitelistEntry(ctx context.Context, poolID, address string, total model.TokenAmount) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("add_whitelist_entry", err, start) }()

	entry := model.WhitelistEntry{
		PoolID:    poolID,
		Address:   address,
		Total:     total,
		Claimed:   model.Amount(0),
		Remaining: total,
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if tx.Error != nil {
		err = fmt.Errorf("insert whitelist entry: %w", tx.Error)
		return err
	}
	if tx.RowsAffected == 0 {
		err = ErrEntryExists
		return err
	}
	return nil
}

// GetWhitelistEntry fetches one user's entry, or nil when absent.
func (r *Repository) GetWhitelistEntry(ctx context.Context, poolID, address string) (*model.WhitelistEntry, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("get_whitelist_entry", err, start) }()

	var entry model.WhitelistEntry
	tx := r.db.WithContext(ctx).First(&entry, "pool_id = ? AND address = ?", poolID, address)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		err = fmt.Errorf("select whitelist entry: %w", tx.Error)
		return nil, err
	}
	return &entry, nil
}

// ListWhitelist returns every entry in a pool ordered by address.
func (r *Repository) ListWhitelist(ctx context.Context, poolID string) ([]model.WhitelistEntry, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("list_whitelist", err, start) }()

	var entries []model.WhitelistEntry
	tx := r.db.WithContext(ctx).Where("pool_id = ?", poolID).Order("address ASC").Find(&entries)
	if tx.Error != nil {
		err = fmt.Errorf("select whitelist: %w", tx.Error)
		return nil, err
	}
	return entries, nil
}

// RemoveWhitelistEntry deletes a user's entry from a pool.
func (r *Repository) RemoveWhitelistEntry(ctx context.Context, poolID, address string) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("remove_whitelist_entry", err, start) }()

	tx := r.db.WithContext(ctx).Where("pool_id = ? AND address = ?", poolID, address).Delete(&model.WhitelistEntry{})
	if tx.Error != nil {
		err = fmt.Errorf("delete whitelist entry: %w", tx.Error)
		return err
	}
	if tx.RowsAffected == 0 {
		err = ErrEntryNotFound
		return err
	}
	return nil
}

// ApplyClaim records a settled claim atomically: the entry's claimed grows,
// remaining shrinks, last-withdraw moves forward, and the pool balance
// drops by the same amount. Both rows lock for the duration so concurrent
// claims serialize; any invariant breach rolls the whole claim back.
func (r *Repository) ApplyClaim(ctx context.Context, poolID, address string, amount model.TokenAmount, claimedAt time.Time) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("apply_claim", err, start) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pool model.VestingAccount
		if e := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pool, "pool_id = ?", poolID).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				return ErrPoolNotFound
			}
			return fmt.Errorf("lock pool: %w", e)
		}

		var entry model.WhitelistEntry
		if e := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, "pool_id = ? AND address = ?", poolID, address).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				return ErrEntryNotFound
			}
			return fmt.Errorf("lock whitelist entry: %w", e)
		}

		if pool.Remaining.LessThan(amount) || entry.Remaining.LessThan(amount) {
			return ErrInvariantViolated
		}
		if entry.LastWithdrawAt != nil && claimedAt.Before(*entry.LastWithdrawAt) {
			return ErrStaleWithdrawTime
		}

		entry.Claimed = entry.Claimed.Add(amount)
		entry.Remaining = entry.Remaining.Sub(amount)
		entry.LastWithdrawAt = &claimedAt
		if !entry.Consistent() {
			return ErrInvariantViolated
		}

		pool.Remaining = pool.Remaining.Sub(amount)

		if e := tx.Model(&model.WhitelistEntry{}).
			Where("pool_id = ? AND address = ?", poolID, address).
			Updates(map[string]any{
				"claimed":          entry.Claimed,
				"remaining":        entry.Remaining,
				"last_withdraw_at": entry.LastWithdrawAt,
			}).Error; e != nil {
			return fmt.Errorf("update whitelist entry: %w", e)
		}
		if e := tx.Model(&model.VestingAccount{}).
			Where("pool_id = ?", poolID).
			Update("remaining", pool.Remaining).Error; e != nil {
			return fmt.Errorf("update pool balance: %w", e)
		}
		return nil
	})
	return err
}
