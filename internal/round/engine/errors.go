package engine

import (
	"errors"
	"fmt"

	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
)

var (
	// ErrRoundNotEditable is returned when an edit targets a round outside
	// the scheduled or canceled statuses.
	ErrRoundNotEditable = errors.New("round is not editable in its current status")
	// ErrInvalidTimeRange is returned when round boundaries violate
	// nominationStart < nominationEnd <= votingStart < votingEnd.
	ErrInvalidTimeRange = errors.New("invalid round time range")
	// ErrInvalidExtension is returned when an extension is outside 1..1440 minutes.
	ErrInvalidExtension = errors.New("extension minutes must be between 1 and 1440")
	// ErrNoTallies is returned when results get declared without any vote tallies.
	ErrNoTallies = errors.New("cannot declare results without vote tallies")
)

// InvalidTransitionError reports a transition requested from a status that
// does not allow it. No mutation happens when it is returned.
type InvalidTransitionError struct {
	From model.Status
	Op   model.Operation
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("operation %q is not allowed from status %q", e.Op, e.From)
}

func invalidTransition(from model.Status, op model.Operation) error {
	return &InvalidTransitionError{From: from, Op: op}
}
