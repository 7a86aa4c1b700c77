// Package model defines domain models for nomination-and-voting rounds.
package model

import (
	"time"
)

// Status is the stored lifecycle status of a round. It changes only through
// the explicit transition operations validated by the round engine.
type Status string

const (
	// StatusScheduled marks a round created but not yet started.
	StatusScheduled Status = "scheduled"
	// StatusNominating marks a round accepting token nominations.
	StatusNominating Status = "nominating"
	// StatusVoting marks a round accepting votes.
	StatusVoting Status = "voting"
	// StatusResultsPending marks a round past its voting window with no declared results.
	StatusResultsPending Status = "results_pending"
	// StatusResultsDeclared marks a round with declared results awaiting completion.
	StatusResultsDeclared Status = "results_declared"
	// StatusCompleted marks a finished round.
	StatusCompleted Status = "completed"
	// StatusCanceled marks a round canceled by an admin.
	StatusCanceled Status = "canceled"
)

// Phase is the effective stage of a round as derived from its time
// boundaries and stored status. Values mirror Status.
type Phase string

const (
	PhaseScheduled       Phase = "scheduled"
	PhaseNominating      Phase = "nominating"
	PhaseVoting          Phase = "voting"
	PhaseResultsPending  Phase = "results_pending"
	PhaseResultsDeclared Phase = "results_declared"
	PhaseCompleted       Phase = "completed"
	PhaseCanceled        Phase = "canceled"
)

// Operation identifies a requested round transition.
type Operation string

const (
	OpStart           Operation = "start"
	OpEndNomination   Operation = "end_nomination"
	OpEndVoting       Operation = "end_voting"
	OpCancel          Operation = "cancel"
	OpRestart         Operation = "restart"
	OpDelete          Operation = "delete"
	OpExtendTime      Operation = "extend_time"
	OpDeclareResults  Operation = "declare_results"
	OpInstantComplete Operation = "instant_complete"
)

// DeclareMode selects how results get declared once voting ends.
type DeclareMode string

const (
	// DeclareManual requires an admin to declare results.
	DeclareManual DeclareMode = "manual"
	// DeclareAutomatic declares results a configured delay after voting ends.
	DeclareAutomatic DeclareMode = "automatic"
)

// Recurrence describes an optional repetition pattern for a round.
type Recurrence struct {
	Pattern    string `json:"pattern"`
	Frequency  uint32 `json:"frequency"`
	DayOfWeek  uint8  `json:"dayOfWeek"`
	DayOfMonth uint8  `json:"dayOfMonth"`
	TimeOfDay  string `json:"timeOfDay"`
}

// TokenTally is one token's vote total within a round.
type TokenTally struct {
	Token     string `json:"token"`
	Nominator string `json:"nominator"`
	Votes     uint64 `json:"votes"`
}

// Results holds the declared outcome of a round.
type Results struct {
	DeclaredAt time.Time    `json:"declaredAt"`
	Winners    []string     `json:"winners"`
	Ranking    []TokenTally `json:"ranking"`
	TotalVotes uint64       `json:"totalVotes"`
}

// Round represents one nomination-and-voting cycle.
type Round struct {
	Number uint64 `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name   string `gorm:"size:128" json:"name"`

	NominationStart time.Time `json:"nominationStart"`
	NominationEnd   time.Time `json:"nominationEnd"`
	VotingStart     time.Time `json:"votingStart"`
	VotingEnd       time.Time `json:"votingEnd"`

	Status Status `gorm:"size:32;index" json:"status"`

	NominationFee uint64 `json:"nominationFee"`
	VotingFee     uint64 `json:"votingFee"`

	DeclareMode             DeclareMode `gorm:"size:16" json:"declareMode"`
	DeclarationDelayMinutes uint32      `json:"declarationDelayMinutes"`
	CompletionDelayMinutes  uint32      `json:"completionDelayMinutes"`

	Recurrence *Recurrence `gorm:"serializer:json" json:"recurrence,omitempty"`

	Results           *Results   `gorm:"serializer:json" json:"results,omitempty"`
	ResultsDeclaredAt *time.Time `gorm:"index" json:"resultsDeclaredAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasDeclaredResults reports whether results were ever declared for the round.
func (r Round) HasDeclaredResults() bool {
	return r.Results != nil
}

// IsActive reports whether the round is in a phase that forbids deletion.
func (r Round) IsActive() bool {
	return r.Status != StatusScheduled && r.Status != StatusCanceled
}

// IsEditable reports whether time boundaries, fees and recurrence may change.
func (r Round) IsEditable() bool {
	return r.Status == StatusScheduled || r.Status == StatusCanceled
}
