package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/controllers"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/middleware"
)

// ApiRouter wires the webhook endpoint, auth and the admin read surface.
type ApiRouter struct {
	Webhook        *controllers.WebhookController
	Auth           *controllers.AuthController
	Members        *controllers.MemberController
	Health         *controllers.HealthController
	JWTSecret      string
	LimiterStorage fiber.Storage
}

func NewApiRouter(
	webhook *controllers.WebhookController,
	auth *controllers.AuthController,
	members *controllers.MemberController,
	health *controllers.HealthController,
	jwtSecret string,
	limiterStorage fiber.Storage,
) *ApiRouter {
	return &ApiRouter{
		Webhook:        webhook,
		Auth:           auth,
		Members:        members,
		Health:         health,
		JWTSecret:      jwtSecret,
		LimiterStorage: limiterStorage,
	}
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	app.Get("/health", h.Health.HandleHealth)

	// The provider owns redelivery, so the webhook endpoint is not rate
	// limited; only the public API group is.
	hook := app.Group("/webhook")
	hook.Get("/provider", h.Webhook.HandleProviderWebhookGet)
	hook.Post("/provider", h.Webhook.HandleProviderWebhook)

	api := app.Group("/api", limiter.New(limiter.Config{Storage: h.LimiterStorage}))
	v1 := api.Group("/v1")

	v1.Post("/auth/login", h.Auth.HandleLogin)

	adminOnly := []fiber.Handler{middleware.JWTAuthMiddleware(h.JWTSecret), middleware.RequireAdmin()}
	members := v1.Group("/members", adminOnly...)
	members.Get("/", h.Members.HandleListMembers)
	members.Get("/:email", h.Members.HandleGetMember)
	members.Get("/:email/purchases", h.Members.HandleListMemberPurchases)
}
