package transport

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

// VestingHandler serves pool, whitelist and claim endpoints.
type VestingHandler struct {
	claims ClaimService
	admin  VestingAdminService
	export ExportService
	logger *zap.Logger
}

// NewVestingHandler builds a VestingHandler.
func NewVestingHandler(claims ClaimService, admin VestingAdminService, export ExportService, logger *zap.Logger) *VestingHandler {
	return &VestingHandler{
		claims: claims,
		admin:  admin,
		export: export,
		logger: logger.Named("vestingHandler"),
	}
}

type initPoolRequest struct {
	PoolID    string    `json:"poolId"`
	TokenMint string    `json:"tokenMint"`
	Decimals  uint8     `json:"decimals"`
	Total     string    `json:"total"`
	StartAt   time.Time `json:"startAt"`
}

// InitPool handles POST /vesting/pools.
func (h *VestingHandler) InitPool(c *fiber.Ctx) error {
	var req initPoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.PoolID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "poolId is required"})
	}
	total, err := model.AmountFromString(req.Total)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("invalid total: %v", err)})
	}

	err = h.admin.InitPool(c.Context(), model.VestingAccount{
		PoolID:    req.PoolID,
		TokenMint: req.TokenMint,
		Decimals:  req.Decimals,
		Total:     total,
		StartAt:   req.StartAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// GetPool handles GET /vesting/pools/:pool.
func (h *VestingHandler) GetPool(c *fiber.Ctx) error {
	pool, err := h.admin.GetPool(c.Context(), c.Params("pool"))
	if err != nil {
		return writeError(c, err)
	}
	if pool == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "pool not found"})
	}
	return c.JSON(pool)
}

type whitelistAddRequest struct {
	Address string `json:"address"`
	Total   string `json:"total"`
	Actor   string `json:"actor"`
}

// AddWhitelistEntry handles POST /vesting/pools/:pool/whitelist.
func (h *VestingHandler) AddWhitelistEntry(c *fiber.Ctx) error {
	var req whitelistAddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "address is required"})
	}
	total, err := model.AmountFromString(req.Total)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("invalid total: %v", err)})
	}

	if err := h.admin.AddWhitelistEntry(c.Context(), c.Params("pool"), req.Address, req.Actor, total); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// RemoveWhitelistEntry handles DELETE /vesting/pools/:pool/whitelist/:address.
func (h *VestingHandler) RemoveWhitelistEntry(c *fiber.Ctx) error {
	if err := h.admin.RemoveWhitelistEntry(c.Context(), c.Params("pool"), c.Params("address"), c.Query("actor")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListWhitelist handles GET /vesting/pools/:pool/whitelist.
func (h *VestingHandler) ListWhitelist(c *fiber.Ctx) error {
	entries, err := h.admin.ListWhitelist(c.Context(), c.Params("pool"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries})
}

// Eligibility handles GET /vesting/pools/:pool/claims/:address/eligibility.
// Ineligible is a normal answer here, not an error.
func (h *VestingHandler) Eligibility(c *fiber.Ctx) error {
	verdict, err := h.claims.Eligibility(c.Context(), c.Params("pool"), c.Params("address"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(verdict)
}

// NextClaim handles GET /vesting/pools/:pool/claims/:address/next.
func (h *VestingHandler) NextClaim(c *fiber.Ctx) error {
	next, err := h.claims.NextClaim(c.Context(), c.Params("pool"), c.Params("address"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"nextClaimUnix": next})
}

// Claim handles POST /vesting/pools/:pool/claims/:address.
func (h *VestingHandler) Claim(c *fiber.Ctx) error {
	result, err := h.claims.Claim(c.Context(), c.Params("pool"), c.Params("address"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

// DripPlan handles GET /vesting/pools/:pool/drip-plan.
// With ?address= it returns one address (and supports ?format=csv);
// without, the whole pool as JSON.
func (h *VestingHandler) DripPlan(c *fiber.Ctx) error {
	poolID := c.Params("pool")
	address := c.Query("address")

	if address == "" {
		plans, err := h.export.PoolPlans(c.Context(), poolID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"plans": plans})
	}

	if c.Query("format") == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%s-%s-drip-plan.csv", poolID, address))
		if err := h.export.WriteAddressCSV(c.Context(), c.Response().BodyWriter(), poolID, address); err != nil {
			return writeError(c, err)
		}
		return nil
	}

	plan, err := h.export.AddressPlan(c.Context(), poolID, address)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(plan)
}
