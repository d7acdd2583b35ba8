package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthController reports DB and cache reachability.
type HealthController struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewHealthController creates the health controller.
func NewHealthController(db *gorm.DB, cache *redis.Client) *HealthController {
	return &HealthController{db: db, cache: cache}
}

// HandleHealth pings both backends. The cache being down degrades the
// report but the endpoint still answers 200; only a dead DB makes it 503.
func (hc *HealthController) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if hc.db == nil {
		dbStatus = "down"
	} else if sqlDB, err := hc.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if hc.cache == nil || hc.cache.Ping(ctx).Err() != nil {
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"success": dbStatus == "ok",
		"message": "Health check",
		"data": fiber.Map{
			"database": dbStatus,
			"cache":    cacheStatus,
		},
	})
}
