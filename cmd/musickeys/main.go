package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/musickeys/backend/app/repository"
	"github.com/musickeys/backend/internal/pkg/cache"
	"github.com/musickeys/backend/internal/pkg/database"
	"github.com/musickeys/backend/internal/pkg/env"
	"github.com/musickeys/backend/internal/pkg/jobqueue"
	"github.com/musickeys/backend/internal/pkg/router"
)

func main() {
	app := NewApplication()

	// Graceful shutdown: drain the mail queue before exiting
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		jobqueue.GetManager().Stop()
		_ = app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "5000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	// PAYMENT_STORE=memory runs the whole service without MySQL, matching
	// dev and test setups. Anything else uses the database.
	if env.GetEnv("PAYMENT_STORE", "db") == "memory" {
		log.Println("Using in-memory payment store")
		repository.InitializeMemoryFactory()
	} else {
		database.SetupDatabase()
		repository.InitializeFactory(database.GetDB())
	}

	cache.SetupCache()

	// Background mail workers need Redis; skip them when disabled so mails
	// fall back to direct sending.
	if env.GetEnv("JOBQUEUE_ENABLED", "true") == "true" {
		jobqueue.GetManager().Start()
	}

	app := fiber.New(fiber.Config{
		AppName: "musickeys-backend",
	})

	app.Use(recover.New(), logger.New(), cors.New())
	app.Get("/metrics", monitor.New())

	router.InstallRouter(app)

	return app
}
