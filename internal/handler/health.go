package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/kavia-common/gaming-database/internal/health"
)

// healthCheckTimeout bounds the per-request database check so a locked or
// corrupt file cannot hang the listener.
const healthCheckTimeout = 2 * time.Second

// HealthResponse is the JSON body for all health endpoints
type HealthResponse struct {
	Service  string `json:"service"`
	Status   string `json:"status"`
	Database string `json:"database"`
	Detail   string `json:"detail"`
	DBPath   string `json:"db_path"`
	Time     int64  `json:"time"`
}

// HandleHealth serves /, /health, /ready and /live. Every request runs an
// independent database check; nothing is cached between requests.
// @Summary Datastore health check
// @Description Returns OK when the SQLite database file is present and passes a quick structural check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HandleHealth(checker health.Checker, serviceName, dbPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		report := checker.Check(ctx)

		status := "ok"
		code := http.StatusOK
		if !report.Healthy {
			status = "unavailable"
			code = http.StatusServiceUnavailable
		}

		respondJSON(w, code, HealthResponse{
			Service:  serviceName,
			Status:   status,
			Database: "sqlite",
			Detail:   report.Detail,
			DBPath:   dbPath,
			Time:     time.Now().Unix(),
		})
	}
}
