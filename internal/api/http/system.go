package http

import (
	"net/http"
	"time"

	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/jwtx"
)

// HealthResponse reports service health for the probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks breaks readiness down by dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type SystemHandler struct {
	Store        store.Store
	Keys         *jwtx.KeySet
	BuildVersion string
	StartTime    time.Time
}

// HandleLivez godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning basic service health, uptime, and version.
//	@Description	Always returns 200 OK while the process is running.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *SystemHandler) HandleLivez(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.StartTime).String(),
		Version: h.BuildVersion,
	})
}

// HandleReadyz godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection and the session
//	@Description	signing keys.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func (h *SystemHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	checks := &HealthChecks{
		Database: "ok",
		Signer:   "ok",
	}
	overallStatus := "ok"
	statusCode := http.StatusOK

	if err := h.Store.Ping(r.Context()); err != nil {
		checks.Database = "error: " + err.Error()
		overallStatus = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	if !h.Keys.IsReady() {
		checks.Signer = "error: no keys loaded"
		overallStatus = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	httpx.WriteJSON(w, statusCode, HealthResponse{
		Status:  overallStatus,
		Uptime:  time.Since(h.StartTime).String(),
		Version: h.BuildVersion,
		Checks:  checks,
	})
}
