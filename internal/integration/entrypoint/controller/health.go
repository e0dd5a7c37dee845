package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests.
// It reports database connectivity and answers 503 when the probe fails so
// load balancers stop routing to an instance that cannot serve data.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	statusCode := http.StatusServiceUnavailable

	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
		statusCode = http.StatusOK
	}

	response := HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(statusCode, response)
}
