package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DiagHandler serves the unauthenticated diagnostic endpoints the front
// end polls at load time.
type DiagHandler struct {
	startedAt   time.Time
	mailEnabled bool
}

// NewDiagHandler creates a new DiagHandler
func NewDiagHandler(mailEnabled bool) *DiagHandler {
	return &DiagHandler{startedAt: time.Now(), mailEnabled: mailEnabled}
}

func (h *DiagHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "API is working",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *DiagHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.startedAt).String(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *DiagHandler) Features(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"clientAccounts":     true,
		"serviceRequests":    true,
		"teamManagement":     true,
		"contentManagement":  true,
		"uploads":            true,
		"rateLimiting":       true,
		"emailNotifications": h.mailEnabled,
	})
}

// RegisterDiagRoutes registers the diagnostic routes
func (h *DiagHandler) RegisterDiagRoutes(rg *gin.RouterGroup) {
	rg.GET("/test", h.Test)
	rg.GET("/health", h.Health)
	rg.GET("/features", h.Features)
}
