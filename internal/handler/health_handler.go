package handler

import (
	"net/http"
	"time"

	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	log       *logger.Logger
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{log: log, startedAt: time.Now()}
}

// HealthStatus is the health check payload
type HealthStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, HealthStatus{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	}, h.log)
}
