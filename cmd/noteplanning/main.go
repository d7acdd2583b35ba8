package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/controllers"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/repository"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/cache"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/database"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/env"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/mail"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/metrics/counter"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/router"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/webhook"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "3333")))
	log.Fatal(err)
}

// NewApplication constructs every collaborator exactly once and wires them
// together explicitly; nothing downstream reaches for globals.
func NewApplication() *fiber.App {
	env.SetupEnvFile()

	db, err := database.Setup()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	cacheClient := cache.NewClient()
	counters := counter.New(cacheClient)

	repos := repository.NewFactory(db)
	mailer := mail.NewSMTPMailerFromEnv()
	webhookService := webhook.NewService(repos.GetMemberRepository(), repos.GetPurchaseRepository(), mailer)

	webhookController := controllers.NewWebhookController(
		webhookService,
		env.GetEnv("WEBHOOK_SECRET", ""),
		env.GetEnv("PROVIDER_PUBLIC_KEY", ""),
		counters,
	)
	jwtSecret := env.GetEnv("JWT_SECRET", "")
	authController := controllers.NewAuthController(repos.GetMemberRepository(), jwtSecret)
	memberController := controllers.NewMemberController(repos.GetMemberRepository(), repos.GetPurchaseRepository())
	healthController := controllers.NewHealthController(db, cacheClient)

	app := fiber.New(fiber.Config{
		AppName: "noteplanning-backend",
	})
	app.Use(recover.New(), logger.New())

	// SWAGGER / OPENAPI
	app.Use(swagger.New(swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}))

	limiterStorage := redisstorage.New(redisstorage.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: mustAtoi(env.GetEnv("CACHE_PORT", "6379")),
	})

	router.InstallRouter(app, router.NewApiRouter(
		webhookController,
		authController,
		memberController,
		healthController,
		jwtSecret,
		limiterStorage,
	))

	return app
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid numeric value %q: %v", s, err)
	}
	return n
}
