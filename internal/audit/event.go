// Package audit records the authoritative history of round transitions and
// claim settlements. Events append only from the operation that actually
// committed the change; nothing client-side ever writes here.
package audit

import "time"

// EventType classifies an audit event.
type EventType string

const (
	// EventRoundTransition records one applied round operation.
	EventRoundTransition EventType = "round_transition"
	// EventClaimSettled records one settled vesting claim.
	EventClaimSettled EventType = "claim_settled"
	// EventWhitelistChange records an admin whitelist add or remove.
	EventWhitelistChange EventType = "whitelist_change"
)

// Event is one append-only audit record.
type Event struct {
	Type       EventType
	Subject    string // round number or pool id
	Actor      string // admin identity or wallet address
	Operation  string
	FromStatus string
	ToStatus   string
	Amount     string // base units for claim events, empty otherwise
	OccurredAt time.Time
}
