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

// InitPool creates a vesting pool. A pool initializes exactly once;
// repeating the call fails with ErrPoolExists.
func (r *Repository) InitPool(ctx context.Context, pool model.VestingAccount) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("init_pool", err, start) }()

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&pool)
	if tx.Error != nil {
		err = fmt.Errorf("insert pool: %w", tx.Error)
		return err
	}
	if tx.RowsAffected == 0 {
		err = ErrPoolExists
		return err
	}
	return nil
}

// GetPool fetches one pool snapshot, or nil when the pool does not exist.
func (r *Repository) GetPool(ctx context.Context, poolID string) (*model.VestingAccount, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("get_pool", err, start) }()

	var pool model.VestingAccount
	tx := r.db.WithContext(ctx).First(&pool, "pool_id = ?", poolID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		err = fmt.Errorf("select pool: %w", tx.Error)
		return nil, err
	}
	return &pool, nil
}
