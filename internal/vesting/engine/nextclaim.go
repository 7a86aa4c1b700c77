package engine

import (
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/clock"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

// NextClaimTime returns the earliest instant the user can next claim:
// immediately (or at pool start, if that is still ahead) when they never
// claimed, at the next UTC midnight when they already claimed today, and
// now otherwise.
func NextClaimTime(pool *model.VestingAccount, entry *model.WhitelistEntry, now time.Time) time.Time {
	if pool != nil && now.Before(pool.StartAt) {
		return pool.StartAt
	}
	if entry == nil || entry.LastWithdrawAt == nil {
		return now
	}
	if clock.SameUTCDay(*entry.LastWithdrawAt, now) {
		return clock.NextUTCMidnight(now)
	}
	return now
}

// NextClaimUnix is NextClaimTime as a unix-seconds timestamp.
func NextClaimUnix(pool *model.VestingAccount, entry *model.WhitelistEntry, now time.Time) int64 {
	return NextClaimTime(pool, entry, now).Unix()
}
