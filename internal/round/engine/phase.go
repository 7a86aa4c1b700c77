// Package engine implements the round lifecycle state machine: phase
// derivation from time boundaries, transition validation and application,
// and the timing of automatic result declaration and completion.
//
// All functions are pure. Callers pass an explicit now and a round snapshot
// and are responsible for re-fetching authoritative state before persisting
// any returned mutation.
package engine

import (
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
)

// statusRank orders statuses along the normal lifecycle so that an explicit
// admin advancement is never rolled back by a time-derived phase.
var statusRank = map[model.Status]int{
	model.StatusScheduled:       0,
	model.StatusNominating:      1,
	model.StatusVoting:          2,
	model.StatusResultsPending:  3,
	model.StatusResultsDeclared: 4,
	model.StatusCompleted:       5,
}

// DerivePhase computes the effective phase of a round at the given instant.
//
// Terminal or explicitly-advanced statuses (canceled, completed,
// results_declared) are authoritative. Otherwise the phase follows the time
// windows, except that it never precedes a status an admin already advanced
// to (an early EndNomination keeps the round in voting even while the
// nomination window is still open).
func DerivePhase(r model.Round, now time.Time) model.Phase {
	switch r.Status {
	case model.StatusCanceled:
		return model.PhaseCanceled
	case model.StatusCompleted:
		return model.PhaseCompleted
	case model.StatusResultsDeclared:
		return model.PhaseResultsDeclared
	}

	derived := timeDerivedStatus(r, now)
	if statusRank[r.Status] > statusRank[derived] {
		derived = r.Status
	}
	return model.Phase(derived)
}

func timeDerivedStatus(r model.Round, now time.Time) model.Status {
	switch {
	case now.Before(r.NominationStart):
		return model.StatusScheduled
	case now.Before(r.VotingStart):
		return model.StatusNominating
	case !now.After(r.VotingEnd):
		return model.StatusVoting
	default:
		return model.StatusResultsPending
	}
}

// TimeRemaining returns the duration until the current phase's end boundary,
// or zero when the phase has no running countdown.
func TimeRemaining(r model.Round, now time.Time) time.Duration {
	var end time.Time
	switch DerivePhase(r, now) {
	case model.PhaseScheduled:
		end = r.NominationStart
	case model.PhaseNominating:
		end = r.NominationEnd
	case model.PhaseVoting:
		end = r.VotingEnd
	default:
		return 0
	}
	if d := end.Sub(now); d > 0 {
		return d
	}
	return 0
}

// TimeUntilVoting returns how long until the voting window opens, zero once open.
func TimeUntilVoting(r model.Round, now time.Time) time.Duration {
	if d := r.VotingStart.Sub(now); d > 0 {
		return d
	}
	return 0
}

// DeclarationDueAt returns the instant automatic result declaration becomes
// due, or false when the round does not declare automatically.
func DeclarationDueAt(r model.Round) (time.Time, bool) {
	if r.DeclareMode != model.DeclareAutomatic {
		return time.Time{}, false
	}
	return r.VotingEnd.Add(time.Duration(r.DeclarationDelayMinutes) * time.Minute), true
}

// CompletionDueAt returns the instant automatic completion becomes due, or
// false while no results have been declared.
func CompletionDueAt(r model.Round) (time.Time, bool) {
	if r.Results == nil {
		return time.Time{}, false
	}
	return r.Results.DeclaredAt.Add(time.Duration(r.CompletionDelayMinutes) * time.Minute), true
}
