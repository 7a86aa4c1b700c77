package transport

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewServer assembles the fiber app with all API routes.
func NewServer(rounds *RoundHandler, vesting *VestingHandler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "tokenvote API",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	api.Post("/rounds", rounds.Create)
	api.Get("/rounds", rounds.List)
	api.Get("/rounds/:number", rounds.Get)
	api.Put("/rounds/:number", rounds.Edit)
	api.Delete("/rounds/:number", rounds.Delete)
	api.Post("/rounds/:number/transitions", rounds.Transition)
	api.Get("/rounds/:number/history", rounds.History)

	api.Post("/vesting/pools", vesting.InitPool)
	api.Get("/vesting/pools/:pool", vesting.GetPool)
	api.Get("/vesting/pools/:pool/whitelist", vesting.ListWhitelist)
	api.Post("/vesting/pools/:pool/whitelist", vesting.AddWhitelistEntry)
	api.Delete("/vesting/pools/:pool/whitelist/:address", vesting.RemoveWhitelistEntry)
	api.Get("/vesting/pools/:pool/claims/:address/eligibility", vesting.Eligibility)
	api.Get("/vesting/pools/:pool/claims/:address/next", vesting.NextClaim)
	api.Post("/vesting/pools/:pool/claims/:address", vesting.Claim)
	api.Get("/vesting/pools/:pool/drip-plan", vesting.DripPlan)

	logger.Named("transport").Info("routes registered")
	return app
}
