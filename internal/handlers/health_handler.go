package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
)

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db         Pinger
	cache      Pinger
	categories func() int
}

// NewHealthHandler takes a nil cache when Redis is not configured.
func NewHealthHandler(db, cache Pinger, categories func() int) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, categories: categories}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		DB:         dbStatus,
		Cache:      cacheStatus,
		Categories: h.categories(),
	})
}
