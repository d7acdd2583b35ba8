package controllers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/metrics/counter"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/webhook"
)

const signatureHeader = "X-Signature"

// WebhookController owns the provider webhook endpoint. Everything it needs
// is injected at construction; nothing is resolved via globals.
type WebhookController struct {
	service   *webhook.Service
	secret    string
	publicKey string
	counters  *counter.Counter
}

// NewWebhookController creates the webhook controller.
func NewWebhookController(service *webhook.Service, secret, publicKey string, counters *counter.Counter) *WebhookController {
	return &WebhookController{
		service:   service,
		secret:    secret,
		publicKey: publicKey,
		counters:  counters,
	}
}

// HandleProviderWebhookGet rejects GET unconditionally; only POST reconciles.
func (wc *WebhookController) HandleProviderWebhookGet(c *fiber.Ctx) error {
	return respondError(c, fiber.StatusMethodNotAllowed, "Method GET not supported. Use POST.", nil, nil)
}

// HandleProviderWebhook runs the full pipeline for one delivery:
// query validation, envelope validation, authenticity, then routing.
func (wc *WebhookController) HandleProviderWebhook(c *fiber.Ctx) error {
	providedSecret := c.Query("webhookSecret")
	if providedSecret == "" {
		wc.count("invalid")
		return respondError(c, fiber.StatusBadRequest, "Invalid query parameters", nil, nil)
	}

	rawBody := append([]byte(nil), c.BodyRaw()...)

	envelope, fields, err := webhook.ParseEnvelope(rawBody)
	if err != nil {
		wc.count("invalid")
		return respondError(c, fiber.StatusBadRequest, "Invalid request", fields, err)
	}

	if wc.secret == "" || !webhook.VerifySharedSecret(providedSecret, wc.secret) {
		// Never log the submitted value, only who sent it.
		log.Printf("[Webhook] WARN rejected delivery with bad secret from %s", GetClientIP(c))
		wc.count("unauthorized")
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	if sig := c.Get(signatureHeader); sig != "" && !webhook.VerifySignature(rawBody, sig, wc.publicKey) {
		log.Printf("[Webhook] WARN rejected delivery with bad signature from %s", GetClientIP(c))
		wc.count("unauthorized")
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	result, err := wc.service.Process(context.Background(), envelope, rawBody)
	if err != nil {
		log.Printf("[Webhook] reconciliation failed for event %q: %v", envelope.Event, err)
		wc.count("failed")
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}

	wc.count(string(result.Outcome))

	switch result.Outcome {
	case webhook.OutcomeReconciled:
		return respondSuccess(c, fiber.StatusCreated, "Purchase reconciled successfully", reconciliationData(result, envelope))
	default:
		return respondSuccess(c, fiber.StatusOK, "Webhook received but no action taken", nil)
	}
}

func (wc *WebhookController) count(outcome string) {
	if err := wc.counters.AddOutcome(outcome); err != nil {
		log.Printf("[Webhook] failed to record outcome counter: %v", err)
	}
}

func reconciliationData(result *webhook.Result, envelope *webhook.Envelope) fiber.Map {
	products := envelope.Products
	if products == nil {
		products = []webhook.Product{}
	}
	return fiber.Map{
		"account": fiber.Map{
			"id":        result.Member.ID,
			"name":      result.Member.Name,
			"email":     result.Member.Email,
			"role":      result.Member.Role,
			"createdAt": formatTime(result.Member.CreatedAt),
		},
		"purchase": fiber.Map{
			"id":            result.Purchase.UUID,
			"amount":        result.Purchase.Amount,
			"paymentAmount": result.Purchase.PaymentAmount,
			"status":        result.Purchase.Status,
			"products":      products,
			"createdAt":     formatTime(result.Purchase.CreatedAt),
		},
	}
}
