package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/magnetmantra/magnet_api/internal/utils"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth handles GET /v1/health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.db.PingContext(ctx); err != nil {
		dbStatus = "down"
	}

	utils.Success(c, 200, "OK", gin.H{
		"status":   "up",
		"database": dbStatus,
	})
}
