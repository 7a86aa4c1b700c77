package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
)

// Create inserts a new round record.
func (r *Repository) Create(ctx context.Context, round model.Round) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("create_round", err, start) }()

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&round)
	if tx.Error != nil {
		err = fmt.Errorf("insert round: %w", tx.Error)
		return err
	}
	if tx.RowsAffected == 0 {
		err = ErrAlreadyExists
		return err
	}
	return nil
}

// Get fetches one round by number.
func (r *Repository) Get(ctx context.Context, number uint64) (model.Round, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("get_round", err, start) }()

	var round model.Round
	tx := r.db.WithContext(ctx).First(&round, "number = ?", number)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			err = ErrNotFound
		} else {
			err = fmt.Errorf("select round: %w", tx.Error)
		}
		return model.Round{}, err
	}
	return round, nil
}

// List returns all rounds, newest first.
func (r *Repository) List(ctx context.Context) ([]model.Round, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("list_rounds", err, start) }()

	var rounds []model.Round
	if tx := r.db.WithContext(ctx).Order("number DESC").Find(&rounds); tx.Error != nil {
		err = fmt.Errorf("select rounds: %w", tx.Error)
		return nil, err
	}
	return rounds, nil
}

// UpdateGuarded persists the round only while its stored status still equals
// expected. ErrStatusConflict means another actor advanced the round first
// and nothing was written.
func (r *Repository) UpdateGuarded(ctx context.Context, round model.Round, expected model.Status) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("update_round_guarded", err, start) }()

	tx := r.db.WithContext(ctx).
		Model(&model.Round{}).
		Where("number = ? AND status = ?", round.Number, expected).
		Select("*").
		Omit("number", "created_at").
		Updates(&round)
	if tx.Error != nil {
		err = fmt.Errorf("update round: %w", tx.Error)
		return err
	}
	if tx.RowsAffected == 0 {
		err = ErrStatusConflict
		return err
	}
	return nil
}

// Delete removes a round, but only from the scheduled or canceled statuses.
// Active rounds are never deletable.
func (r *Repository) Delete(ctx context.Context, number uint64) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("delete_round", err, start) }()

	tx := r.db.WithContext(ctx).
		Where("number = ? AND status IN ?", number, []model.Status{model.StatusScheduled, model.StatusCanceled}).
		Delete(&model.Round{})
	if tx.Error != nil {
		err = fmt.Errorf("delete round: %w", tx.Error)
		return err
	}
	if tx.RowsAffected == 0 {
		err = ErrStatusConflict
		return err
	}
	return nil
}

// ListDueForDeclaration finds automatic rounds whose declaration delay has
// elapsed since voting ended and whose results are still undeclared.
func (r *Repository) ListDueForDeclaration(ctx context.Context, now time.Time) ([]model.Round, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("list_due_for_declaration", err, start) }()

	var rounds []model.Round
	tx := r.db.WithContext(ctx).
		Where("declare_mode = ?", model.DeclareAutomatic).
		Where("status IN ?", []model.Status{model.StatusVoting, model.StatusResultsPending}).
		Where("voting_end + declaration_delay_minutes * interval '1 minute' <= ?", now).
		Order("number ASC").
		Find(&rounds)
	if tx.Error != nil {
		err = fmt.Errorf("select due declarations: %w", tx.Error)
		return nil, err
	}
	return rounds, nil
}

// ListDueForCompletion finds declared rounds whose completion delay has
// elapsed since declaration.
func (r *Repository) ListDueForCompletion(ctx context.Context, now time.Time) ([]model.Round, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.Observe("list_due_for_completion", err, start) }()

	var rounds []model.Round
	tx := r.db.WithContext(ctx).
		Where("status = ?", model.StatusResultsDeclared).
		Where("results_declared_at IS NOT NULL").
		Where("results_declared_at + completion_delay_minutes * interval '1 minute' <= ?", now).
		Order("number ASC").
		Find(&rounds)
	if tx.Error != nil {
		err = fmt.Errorf("select due completions: %w", tx.Error)
		return nil, err
	}
	return rounds, nil
}
