package service

import (
	"context"
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	VestingRepository interface {
		InitPool(ctx context.Context, pool model.VestingAccount) error
		GetPool(ctx context.Context, poolID string) (*model.VestingAccount, error)
		AddWhitelistEntry(ctx context.Context, poolID, address string, total model.TokenAmount) error
		GetWhitelistEntry(ctx context.Context, poolID, address string) (*model.WhitelistEntry, error)
		ListWhitelist(ctx context.Context, poolID string) ([]model.WhitelistEntry, error)
		RemoveWhitelistEntry(ctx context.Context, poolID, address string) error
		ApplyClaim(ctx context.Context, poolID, address string, amount model.TokenAmount, claimedAt time.Time) error
	}
	// ClaimSubmitter performs the external transfer for an approved claim
	// and returns its transaction signature. Submission failure means the
	// claim did not happen; nothing is recorded.
	ClaimSubmitter interface {
		Submit(ctx context.Context, poolID, address string, amount model.TokenAmount) (string, error)
	}
	AuditSink interface {
		Record(ctx context.Context, ev audit.Event) error
	}
)
