// Package transport exposes the HTTP API. Handlers translate between JSON
// payloads and the round/vesting services; all domain decisions stay in the
// engines.
package transport

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/round/engine"
	"github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
	roundservice "github.com/tokenvote-labs/tokenvote-backend/internal/round/service"
	"github.com/tokenvote-labs/tokenvote-backend/pkg/safe"
)

// RoundHandler serves the round lifecycle endpoints.
type RoundHandler struct {
	svc    RoundService
	log    AuditLog
	logger *zap.Logger
	now    func() time.Time
}

// NewRoundHandler builds a RoundHandler.
func NewRoundHandler(svc RoundService, log AuditLog, logger *zap.Logger) *RoundHandler {
	return &RoundHandler{
		svc:    svc,
		log:    log,
		logger: logger.Named("roundHandler"),
		now:    time.Now,
	}
}

// roundResponse augments the stored round with its derived phase and
// countdowns.
type roundResponse struct {
	model.Round
	Phase                 model.Phase `json:"phase"`
	TimeRemainingSeconds  int64       `json:"timeRemainingSeconds"`
	TimeUntilVotingSecond int64       `json:"timeUntilVotingSeconds"`
}

func (h *RoundHandler) respond(r model.Round) roundResponse {
	now := h.now()
	return roundResponse{
		Round:                 r,
		Phase:                 engine.DerivePhase(r, now),
		TimeRemainingSeconds:  int64(engine.TimeRemaining(r, now) / time.Second),
		TimeUntilVotingSecond: int64(engine.TimeUntilVoting(r, now) / time.Second),
	}
}

type createRoundRequest struct {
	Number          uint64    `json:"number"`
	Name            string    `json:"name"`
	NominationStart time.Time `json:"nominationStart"`
	NominationEnd   time.Time `json:"nominationEnd"`
	VotingStart     time.Time `json:"votingStart"`
	VotingEnd       time.Time `json:"votingEnd"`
	NominationFee   uint64    `json:"nominationFee"`
	VotingFee       uint64    `json:"votingFee"`

	DeclareMode             model.DeclareMode `json:"declareMode"`
	DeclarationDelayMinutes uint32            `json:"declarationDelayMinutes"`
	CompletionDelayMinutes  uint32            `json:"completionDelayMinutes"`
	Recurrence              *model.Recurrence `json:"recurrence,omitempty"`
}

// Create handles POST /rounds.
func (h *RoundHandler) Create(c *fiber.Ctx) error {
	var req createRoundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	round, err := h.svc.Create(c.Context(), model.Round{
		Number:                  req.Number,
		Name:                    req.Name,
		NominationStart:         req.NominationStart,
		NominationEnd:           req.NominationEnd,
		VotingStart:             req.VotingStart,
		VotingEnd:               req.VotingEnd,
		NominationFee:           req.NominationFee,
		VotingFee:               req.VotingFee,
		DeclareMode:             req.DeclareMode,
		DeclarationDelayMinutes: req.DeclarationDelayMinutes,
		CompletionDelayMinutes:  req.CompletionDelayMinutes,
		Recurrence:              req.Recurrence,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.respond(round))
}

func roundNumber(c *fiber.Ctx) (uint64, error) {
	raw, err := c.ParamsInt("number")
	if err != nil {
		return 0, err
	}
	return safe.Uint64FromInt64(int64(raw))
}

// Get handles GET /rounds/:number.
func (h *RoundHandler) Get(c *fiber.Ctx) error {
	number, err := roundNumber(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid round number"})
	}
	round, err := h.svc.Get(c.Context(), number)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.respond(round))
}

// List handles GET /rounds.
func (h *RoundHandler) List(c *fiber.Ctx) error {
	rounds, err := h.svc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]roundResponse, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, h.respond(r))
	}
	return c.JSON(fiber.Map{"rounds": out})
}

type editRoundRequest struct {
	Name            string    `json:"name"`
	NominationStart time.Time `json:"nominationStart"`
	NominationEnd   time.Time `json:"nominationEnd"`
	VotingStart     time.Time `json:"votingStart"`
	VotingEnd       time.Time `json:"votingEnd"`
	NominationFee   uint64    `json:"nominationFee"`
	VotingFee       uint64    `json:"votingFee"`

	DeclareMode             model.DeclareMode `json:"declareMode"`
	DeclarationDelayMinutes uint32            `json:"declarationDelayMinutes"`
	CompletionDelayMinutes  uint32            `json:"completionDelayMinutes"`
	Recurrence              *model.Recurrence `json:"recurrence,omitempty"`
}

// Edit handles PUT /rounds/:number.
func (h *RoundHandler) Edit(c *fiber.Ctx) error {
	number, err := roundNumber(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid round number"})
	}
	var req editRoundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	round, err := h.svc.Edit(c.Context(), number, roundservice.EditRequest(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.respond(round))
}

type transitionRequest struct {
	Operation     model.Operation    `json:"operation"`
	Actor         string             `json:"actor"`
	ExtendMinutes int                `json:"extendMinutes,omitempty"`
	Tallies       []model.TokenTally `json:"tallies,omitempty"`
}

// Transition handles POST /rounds/:number/transitions.
func (h *RoundHandler) Transition(c *fiber.Ctx) error {
	number, err := roundNumber(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid round number"})
	}
	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Operation == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "operation is required"})
	}

	round, err := h.svc.Transition(c.Context(), number, req.Operation, req.Actor, engine.Params{
		ExtendMinutes: req.ExtendMinutes,
		Tallies:       req.Tallies,
	})
	if err != nil {
		return writeError(c, err)
	}
	if req.Operation == model.OpDelete {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(h.respond(round))
}

// Delete handles DELETE /rounds/:number.
func (h *RoundHandler) Delete(c *fiber.Ctx) error {
	number, err := roundNumber(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid round number"})
	}
	if _, err := h.svc.Transition(c.Context(), number, model.OpDelete, c.Query("actor"), engine.Params{}); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

const defaultHistoryLimit = 50

type auditEventResponse struct {
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Operation  string    `json:"operation"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// History handles GET /rounds/:number/history, newest event first.
func (h *RoundHandler) History(c *fiber.Ctx) error {
	number, err := roundNumber(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid round number"})
	}
	limit, err := safe.Uint64FromInt64(int64(c.QueryInt("limit", defaultHistoryLimit)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
	}

	events, err := h.log.EventsBySubject(c.Context(), strconv.FormatUint(number, 10), limit)
	if err != nil {
		h.logger.Error("round history read failed", zap.Uint64("round", number), zap.Error(err))
		return writeError(c, err)
	}

	out := make([]auditEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, auditEventResponse{
			Type:       string(ev.Type),
			Actor:      ev.Actor,
			Operation:  ev.Operation,
			FromStatus: ev.FromStatus,
			ToStatus:   ev.ToStatus,
			Amount:     ev.Amount,
			OccurredAt: ev.OccurredAt,
		})
	}
	return c.JSON(fiber.Map{"events": out})
}
