package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/api/response"
)

const pingTimeout = 3 * time.Second

// Pinger checks that a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	cms     Pinger
	db      Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler. db may be nil when no
// database is configured.
func NewHealthHandler(cms, db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		cms:     cms,
		db:      db,
		version: version,
	}
}

type cmsStatus struct {
	Connected bool `json:"connected"`
}

type databaseStatus struct {
	Configured bool `json:"configured"`
	Connected  bool `json:"connected"`
}

type healthData struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	CMS      cmsStatus      `json:"cms"`
	Database databaseStatus `json:"database"`
}

// ServeHTTP handles the health check request. The site answers 200 even when
// a dependency is down; the status field reports "degraded" instead.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	data := healthData{
		Status:  "healthy",
		Version: h.version,
	}

	if err := h.cms.Ping(ctx); err != nil {
		slog.Warn("cms health check failed", "error", err, "requestId", requestID)
		data.Status = "degraded"
	} else {
		data.CMS.Connected = true
	}

	if h.db != nil {
		data.Database.Configured = true
		if err := h.db.Ping(ctx); err != nil {
			slog.Warn("database health check failed", "error", err, "requestId", requestID)
			data.Status = "degraded"
		} else {
			data.Database.Connected = true
		}
	}

	response.Success(w, http.StatusOK, data, requestID)
}
