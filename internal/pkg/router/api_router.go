package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/musickeys/backend/app/controllers"
	"github.com/musickeys/backend/internal/pkg/env"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":      "ok",
			"message":     "Music Keys backend is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env.GetEnv("APP_ENV", "dev"),
		})
	})

	// Checkout and verification
	api.Post("/create-order", controllers.HandleCreateOrder)
	api.Post("/mock-create-order", controllers.HandleMockCreateOrder)
	api.Post("/verify-payment", controllers.HandleVerifyPayment)
	api.Post("/mock-verify-payment", controllers.HandleMockVerifyPayment)

	// Revenue analytics
	api.Get("/payments", controllers.HandleListPayments)
	api.Get("/payment-stats", controllers.HandlePaymentStats)
	api.Get("/receipts/:id", controllers.HandleGetReceipt)

	// Entitlements and downloads
	api.Post("/user-purchases", controllers.HandleUserPurchases)
	api.Post("/verify-download-access", controllers.HandleVerifyDownloadAccess)
	api.Post("/download/:fileKey", controllers.HandleDownloadFile)

	// Featured YouTube channels
	api.Get("/youtube-channels", controllers.HandleListChannels)
	api.Post("/youtube-channels", controllers.HandleAddChannel)
	api.Put("/youtube-channels/:id", controllers.HandleUpdateChannel)
	api.Delete("/youtube-channels/:id", controllers.HandleDeleteChannel)

	// Transactional mail
	api.Post("/send-welcome-email", controllers.HandleSendWelcomeEmail)
	api.Post("/request-password-reset", controllers.HandleRequestPasswordReset)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
