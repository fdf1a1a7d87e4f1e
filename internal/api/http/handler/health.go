package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-back/internal/apperrors"
)

const bannerText = "Portfolio backend running"

type HealthService interface {
	IsOK() (bool, error)
	PingDB(ctx context.Context) error
}

type HealthHandler struct {
	log *zap.Logger
	svc HealthService
}

func NewHealthHandler(log *zap.Logger, svc HealthService) *HealthHandler {
	return &HealthHandler{
		log: log,
		svc: svc,
	}
}

// Ping
// @Summary Liveness probe.
// @Description Returns "pong" without touching the store.
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse "Success"
// @Router /health/ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{
		Message: "pong",
	})
}

// Health
// @Summary Readiness probe.
// @Description Round-trips the contact store so the answer reflects real availability.
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse "Store reachable"
// @Failure 500 {object} ErrorResponse "Store unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.svc.IsOK(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	if err := h.svc.PingDB(ctx); err != nil {
		h.log.Error("Store ping failed", zap.Error(err))

		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Contact store unreachable.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: "ok",
	})
}

// Banner answers the site root exactly as the original backend did.
func Banner(c *gin.Context) {
	c.String(http.StatusOK, bannerText)
}
