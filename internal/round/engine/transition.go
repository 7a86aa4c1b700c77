package engine

import (
	"sort"
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
)

const (
	minExtensionMinutes = 1
	maxExtensionMinutes = 1440
)

// Params carries operation-specific inputs for Apply.
type Params struct {
	// ExtendMinutes applies to OpExtendTime; valid range 1..1440.
	ExtendMinutes int
	// Tallies applies to OpDeclareResults; the full per-token vote counts.
	Tallies []model.TokenTally
}

// allowedFrom is the transition table: which stored statuses permit each operation.
var allowedFrom = map[model.Operation][]model.Status{
	model.OpStart:           {model.StatusScheduled},
	model.OpEndNomination:   {model.StatusNominating},
	model.OpEndVoting:       {model.StatusVoting},
	model.OpCancel:          {model.StatusNominating, model.StatusVoting},
	model.OpRestart:         {model.StatusCanceled},
	model.OpDelete:          {model.StatusScheduled, model.StatusCanceled},
	model.OpExtendTime:      {model.StatusNominating, model.StatusVoting},
	model.OpDeclareResults:  {model.StatusVoting, model.StatusResultsPending, model.StatusResultsDeclared, model.StatusCompleted},
	model.OpInstantComplete: {model.StatusResultsDeclared},
}

// Allowed reports whether op may run against the given stored status.
func Allowed(status model.Status, op model.Operation) bool {
	for _, s := range allowedFrom[op] {
		if s == status {
			return true
		}
	}
	return false
}

// Apply validates op against the round's stored status and returns the
// mutated copy. The input round is never modified; on any error the round
// must be persisted unchanged.
//
// OpDelete is validation-only here: a nil error means the caller may remove
// the record. Apply never performs the removal itself.
func Apply(r model.Round, op model.Operation, now time.Time, params Params) (model.Round, error) {
	if !Allowed(r.Status, op) {
		return r, invalidTransition(r.Status, op)
	}

	switch op {
	case model.OpStart:
		r.Status = model.StatusNominating
	case model.OpEndNomination:
		r.Status = model.StatusVoting
	case model.OpEndVoting:
		r.Status = model.StatusResultsPending
	case model.OpCancel:
		r.Status = model.StatusCanceled
	case model.OpRestart:
		r.Status = model.StatusScheduled
	case model.OpDelete:
		// nothing to mutate
	case model.OpExtendTime:
		return extendTime(r, params.ExtendMinutes)
	case model.OpDeclareResults:
		return declareResults(r, now, params.Tallies)
	case model.OpInstantComplete:
		r.Status = model.StatusCompleted
	default:
		return r, invalidTransition(r.Status, op)
	}
	return r, nil
}

// extendTime adds minutes to the end boundary of whichever phase the round
// is currently in, leaving the other boundary untouched.
func extendTime(r model.Round, minutes int) (model.Round, error) {
	if minutes < minExtensionMinutes || minutes > maxExtensionMinutes {
		return r, ErrInvalidExtension
	}
	d := time.Duration(minutes) * time.Minute
	switch r.Status {
	case model.StatusNominating:
		r.NominationEnd = r.NominationEnd.Add(d)
		// keep a contiguous voting window when nomination runs into it
		if r.NominationEnd.After(r.VotingStart) {
			shift := r.NominationEnd.Sub(r.VotingStart)
			r.VotingStart = r.VotingStart.Add(shift)
			r.VotingEnd = r.VotingEnd.Add(shift)
		}
	case model.StatusVoting:
		r.VotingEnd = r.VotingEnd.Add(d)
	}
	return r, nil
}

// declareResults ranks tallies, computes the winner set and overwrites any
// previously declared results. Re-declaration is permitted until the round
// completes; on a completed round the call is a no-op and the declared
// results stay frozen.
func declareResults(r model.Round, now time.Time, tallies []model.TokenTally) (model.Round, error) {
	if r.Status == model.StatusCompleted {
		return r, nil
	}
	if len(tallies) == 0 {
		return r, ErrNoTallies
	}

	ranking := make([]model.TokenTally, len(tallies))
	copy(ranking, tallies)
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Votes != ranking[j].Votes {
			return ranking[i].Votes > ranking[j].Votes
		}
		return ranking[i].Token < ranking[j].Token
	})

	maxVotes := ranking[0].Votes
	var winners []string
	var total uint64
	for _, t := range ranking {
		if t.Votes == maxVotes {
			winners = append(winners, t.Token)
		}
		total += t.Votes
	}

	declaredAt := now.UTC()
	r.Results = &model.Results{
		DeclaredAt: declaredAt,
		Winners:    winners,
		Ranking:    ranking,
		TotalVotes: total,
	}
	r.ResultsDeclaredAt = &declaredAt
	r.Status = model.StatusResultsDeclared
	return r, nil
}

// ValidateBoundaries enforces nominationStart < nominationEnd <= votingStart < votingEnd.
func ValidateBoundaries(nominationStart, nominationEnd, votingStart, votingEnd time.Time) error {
	if !nominationStart.Before(nominationEnd) {
		return ErrInvalidTimeRange
	}
	if nominationEnd.After(votingStart) {
		return ErrInvalidTimeRange
	}
	if !votingStart.Before(votingEnd) {
		return ErrInvalidTimeRange
	}
	return nil
}

// ValidateEdit checks that the round accepts boundary/fee/recurrence changes
// and that the proposed boundaries are ordered.
func ValidateEdit(r model.Round, nominationStart, nominationEnd, votingStart, votingEnd time.Time) error {
	if !r.IsEditable() {
		return ErrRoundNotEditable
	}
	return ValidateBoundaries(nominationStart, nominationEnd, votingStart, votingEnd)
}
