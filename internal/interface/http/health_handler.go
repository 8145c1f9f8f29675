package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
	"github.com/oksasatya/finance-tracker-api/pkg/response"
)

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	Store  Pinger
	Driver string
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewHealthHandler(store Pinger, driver string, rdb *redis.Client, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Store: store, Driver: driver, Redis: rdb, Logger: logger}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
}

// Health GET /api/health
//
// The store is required; redis only backs rate limiting, which fails open,
// so an unreachable redis is reported but does not fail the check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{
		Status:    "OK",
		Message:   "Finance Tracker API is running",
		Database:  h.Driver,
		Cache:     "disabled",
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK

	if err := h.Store.Ping(ctx); err != nil {
		helpers.LogError(h.Logger, "health: store ping failed", err, helpers.RequestFields(c))
		res.Status = "ERROR"
		res.Message = "Database unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.Redis != nil {
		res.Cache = "ok"
		if err := helpers.PingRedis(ctx, h.Redis); err != nil {
			helpers.LogError(h.Logger, "health: redis ping failed", err, helpers.RequestFields(c))
			res.Cache = "unavailable"
		}
	}

	response.JSON(c, status, res)
}
