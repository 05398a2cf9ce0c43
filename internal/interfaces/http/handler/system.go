package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the underlying storage is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and version endpoints
type SystemHandler struct {
	BaseHandler
	db      Pinger
	appName string
	version string
	started time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db Pinger, appName, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		appName: appName,
		version: version,
		started: time.Now(),
	}
}

// Health handles GET /health. It reports 503 when the database is down so
// orchestrators can take the instance out of rotation.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "up"
	httpStatus := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			dbStatus = "down"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"app":      h.appName,
		"version":  h.version,
		"database": dbStatus,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
