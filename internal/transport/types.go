package transport

import (
	"context"
	"io"

	"github.com/tokenvote-labs/tokenvote-backend/internal/audit"
	roundengine "github.com/tokenvote-labs/tokenvote-backend/internal/round/engine"
	roundmodel "github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
	vestingengine "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/engine"
	vestingmodel "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
	vestingservice "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/service"
	roundservice "github.com/tokenvote-labs/tokenvote-backend/internal/round/service"
)

type (
	RoundService interface {
		Create(ctx context.Context, round roundmodel.Round) (roundmodel.Round, error)
		Get(ctx context.Context, number uint64) (roundmodel.Round, error)
		List(ctx context.Context) ([]roundmodel.Round, error)
		Edit(ctx context.Context, number uint64, req roundservice.EditRequest) (roundmodel.Round, error)
		Transition(ctx context.Context, number uint64, op roundmodel.Operation, actor string, params roundengine.Params) (roundmodel.Round, error)
	}
	AuditLog interface {
		EventsBySubject(ctx context.Context, subject string, limit uint64) ([]audit.Event, error)
	}
	ClaimService interface {
		Eligibility(ctx context.Context, poolID, address string) (vestingengine.Eligibility, error)
		NextClaim(ctx context.Context, poolID, address string) (int64, error)
		Claim(ctx context.Context, poolID, address string) (vestingservice.ClaimResult, error)
	}
	VestingAdminService interface {
		InitPool(ctx context.Context, pool vestingmodel.VestingAccount) error
		GetPool(ctx context.Context, poolID string) (*vestingmodel.VestingAccount, error)
		AddWhitelistEntry(ctx context.Context, poolID, address, actor string, total vestingmodel.TokenAmount) error
		RemoveWhitelistEntry(ctx context.Context, poolID, address, actor string) error
		ListWhitelist(ctx context.Context, poolID string) ([]vestingmodel.WhitelistEntry, error)
	}
	ExportService interface {
		AddressPlan(ctx context.Context, poolID, address string) (vestingservice.AddressPlan, error)
		PoolPlans(ctx context.Context, poolID string) ([]vestingservice.AddressPlan, error)
		WriteAddressCSV(ctx context.Context, w io.Writer, poolID, address string) error
	}
)
