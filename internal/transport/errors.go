package transport

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	roundengine "github.com/tokenvote-labs/tokenvote-backend/internal/round/engine"
	roundrepo "github.com/tokenvote-labs/tokenvote-backend/internal/round/repository/postgres"
	vestingrepo "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/repository/postgres"
	vestingservice "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/service"
)

// writeError maps domain errors onto HTTP statuses. Eligibility rejections
// keep their full verdict so clients can show the exact reason.
func writeError(c *fiber.Ctx, err error) error {
	var notEligible *vestingservice.NotEligibleError
	if errors.As(err, &notEligible) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"eligible": false,
			"reason":   notEligible.Verdict.Reason,
			"message":  notEligible.Verdict.Message,
		})
	}

	var invalid *roundengine.InvalidTransitionError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":  invalid.Error(),
			"from":   invalid.From,
			"opcode": invalid.Op,
		})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, roundrepo.ErrNotFound),
		errors.Is(err, vestingrepo.ErrPoolNotFound),
		errors.Is(err, vestingrepo.ErrEntryNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, roundrepo.ErrAlreadyExists),
		errors.Is(err, roundrepo.ErrStatusConflict),
		errors.Is(err, vestingrepo.ErrPoolExists),
		errors.Is(err, vestingrepo.ErrEntryExists):
		status = fiber.StatusConflict
	case errors.Is(err, roundengine.ErrRoundNotEditable),
		errors.Is(err, roundengine.ErrInvalidTimeRange),
		errors.Is(err, roundengine.ErrInvalidExtension),
		errors.Is(err, roundengine.ErrNoTallies):
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
