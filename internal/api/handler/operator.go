package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/api/response"
	"github.com/whitemassif/website/internal/api/validation"
	"github.com/whitemassif/website/internal/audit"
	"github.com/whitemassif/website/internal/sitemap"
)

// SitemapRefresher rebuilds the sitemap snapshot on demand.
type SitemapRefresher interface {
	Refresh(ctx context.Context) (int, error)
	Status() sitemap.Status
}

type revalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Complete    bool   `json:"complete"`
	Entries     int    `json:"entries"`
	BuiltAt     string `json:"builtAt"`
	Operator    string `json:"operator"`
}

type submissionResponse struct {
	ID         string  `json:"id"`
	RequestID  string  `json:"requestId"`
	FormType   string  `json:"formType"`
	Collection string  `json:"collection"`
	Outcome    string  `json:"outcome"`
	HTTPStatus int     `json:"httpStatus"`
	CMSID      *string `json:"cmsId"`
	ClientIP   string  `json:"clientIp"`
	CreatedAt  string  `json:"createdAt"`
}

func toSubmissionResponse(e audit.Event) submissionResponse {
	return submissionResponse{
		ID:         e.ID.String(),
		RequestID:  e.RequestID,
		FormType:   e.FormType,
		Collection: e.Collection,
		Outcome:    e.Outcome,
		HTTPStatus: e.HTTPStatus,
		CMSID:      e.CMSID,
		ClientIP:   e.ClientIP,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// OperatorHandler serves the authenticated operator endpoints.
type OperatorHandler struct {
	sitemap SitemapRefresher
	events  audit.Repository
}

// NewOperatorHandler creates a new OperatorHandler.
func NewOperatorHandler(sitemap SitemapRefresher, events audit.Repository) *OperatorHandler {
	return &OperatorHandler{sitemap: sitemap, events: events}
}

// Revalidate handles POST /api/revalidate.
func (h *OperatorHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	operator := ""
	if id := middleware.GetIdentity(r.Context()); id != nil {
		operator = id.Operator
	}

	n, err := h.sitemap.Refresh(r.Context())
	if err != nil {
		slog.Error("sitemap revalidation failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rebuild sitemap", requestID)
		return
	}

	status := h.sitemap.Status()
	if status.Stale {
		slog.Warn("sitemap revalidated with missing CMS content", "entries", n, "operator", operator, "requestId", requestID)
	} else {
		slog.Info("sitemap revalidated", "entries", n, "operator", operator, "requestId", requestID)
	}
	response.Success(w, http.StatusOK, revalidateResponse{
		Revalidated: true,
		Complete:    !status.Stale,
		Entries:     n,
		BuiltAt:     status.BuiltAt.UTC().Format(time.RFC3339),
		Operator:    operator,
	}, requestID)
}

// Submissions handles GET /api/submissions?limit=.
func (h *OperatorHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	limit, fieldErrors := validation.ValidateListLimit(r.URL.Query().Get("limit"), audit.DefaultListLimit, audit.MaxListLimit)
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", fieldErrors, requestID)
		return
	}

	events, err := h.events.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list submission events", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list submissions", requestID)
		return
	}

	items := make([]submissionResponse, len(events))
	for i, e := range events {
		items[i] = toSubmissionResponse(e)
	}
	response.SuccessList(w, http.StatusOK, items, len(items), limit, requestID)
}
