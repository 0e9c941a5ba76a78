package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether the catalog store answers. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	Version       string `json:"version" example:"0.1.0"`
	UptimeSeconds int64  `json:"uptime_seconds" example:"42"`
}

type ReadyResponse struct {
	Status   string `json:"status" example:"ready"`
	Database string `json:"database" example:"up"`
}

type HealthHandler struct {
	store     Pinger
	startTime time.Time
	version   string
	log       *slog.Logger
}

func NewHealthHandler(store Pinger, startTime time.Time, version string, log *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, startTime: startTime, version: version, log: log}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}

// Ready godoc
// @Summary      Readiness check
// @Description  Reports whether the catalog database answers a ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  ReadyResponse
// @Failure      503  {object}  ReadyResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		h.log.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Database: "up"})
}
