// Package model defines domain models for vesting pools and their
// whitelisted beneficiaries.
package model

import "time"

// VestingAccount mirrors one on-chain vesting pool (e.g. "team"): a
// multi-month token release governed by the static percentage schedule.
type VestingAccount struct {
	PoolID    string `gorm:"primaryKey;size:64" json:"poolId"`
	TokenMint string `gorm:"size:64" json:"tokenMint"`
	Decimals  uint8  `json:"decimals"`

	Total     TokenAmount `json:"total"`
	Remaining TokenAmount `json:"remaining"`

	StartAt time.Time `json:"startAt"`

	CurrentMonth   uint32      `json:"currentMonth"`
	NextMonth      uint32      `json:"nextMonth"`
	MonthTotal     TokenAmount `json:"monthTotal"`
	MonthRemainder TokenAmount `json:"monthRemainder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WhitelistEntry is one user's allocation and claim history within a pool.
// Invariant: Claimed + Remaining == Total, maintained by every claim.
type WhitelistEntry struct {
	PoolID  string `gorm:"primaryKey;size:64" json:"poolId"`
	Address string `gorm:"primaryKey;size:64" json:"address"`

	Total     TokenAmount `json:"total"`
	Claimed   TokenAmount `json:"claimed"`
	Remaining TokenAmount `json:"remaining"`

	LastWithdrawAt         *time.Time `json:"lastWithdrawAt,omitempty"`
	LastTreasuryWithdrawAt *time.Time `json:"lastTreasuryWithdrawAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Consistent reports whether the claimed/remaining bookkeeping still sums to
// the total allocation.
func (w WhitelistEntry) Consistent() bool {
	return w.Claimed.Add(w.Remaining).Cmp(w.Total) == 0
}
