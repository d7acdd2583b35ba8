package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/env"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/webhook"
)

// respondSuccess writes the stable success envelope. Data is omitted when nil.
func respondSuccess(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// respondError writes the stable error envelope. Field-level violations are
// attached when present; the raw error only leaks outside production.
func respondError(c *fiber.Ctx, status int, message string, fields []webhook.FieldError, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	if err != nil && env.IsDev() {
		body["stack"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// GetClientIP determines the actual client IP address considering proxies.
func GetClientIP(c *fiber.Ctx) string {
	if cfIP := strings.TrimSpace(c.Get("CF-Connecting-IP")); cfIP != "" {
		return cfIP
	}
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		// The first entry is the original client IP.
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	return c.IP()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
