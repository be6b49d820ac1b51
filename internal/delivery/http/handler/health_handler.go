package handler

import (
	"context"
	"time"

	"talent-pool/internal/delivery/http/dto"
	"talent-pool/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatsCounter interface {
	Calls() int64
	Degraded() int64
}

type HealthHandler struct {
	db    Pinger
	stats StatsCounter
}

func NewHealthHandler(db Pinger, stats StatsCounter) *HealthHandler {
	return &HealthHandler{db: db, stats: stats}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports 503 when the database does not answer a ping. Provider
// degradation only shows up in the counters.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	res := dto.HealthResponse{Database: "up"}
	status := fiber.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			res.Database = "down"
			status = fiber.StatusServiceUnavailable
		}
	}
	if h.stats != nil {
		res.Stats = dto.StatsCounters{Calls: h.stats.Calls(), Degraded: h.stats.Degraded()}
	}

	msg := response.MessageOK
	if status != fiber.StatusOK {
		msg = response.MessageServiceUnavailable
	}
	return response.Success(c, status, msg, res)
}
