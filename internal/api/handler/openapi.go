package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/api/response"
)

// OpenAPIHandler serves the site's API description in YAML and JSON.
type OpenAPIHandler struct {
	spec []byte

	once    sync.Once
	asJSON  []byte
	convErr error
}

// NewOpenAPIHandler creates a handler for the given YAML document.
func NewOpenAPIHandler(yamlSpec []byte) *OpenAPIHandler {
	return &OpenAPIHandler{spec: yamlSpec}
}

// JSON handles GET /openapi.json. The YAML is converted once and reused.
func (h *OpenAPIHandler) JSON(w http.ResponseWriter, r *http.Request) {
	h.once.Do(func() {
		h.asJSON, h.convErr = yaml.YAMLToJSON(h.spec)
	})

	if h.convErr != nil {
		slog.Error("converting OpenAPI document failed", "error", h.convErr)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "OpenAPI document is invalid", middleware.GetRequestID(r.Context()))
		return
	}
	h.write(w, "application/json", h.asJSON)
}

// YAML handles GET /openapi.yaml.
func (h *OpenAPIHandler) YAML(w http.ResponseWriter, _ *http.Request) {
	h.write(w, "application/yaml", h.spec)
}

func (h *OpenAPIHandler) write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write OpenAPI response", "error", err)
	}
}
