package handler

import (
	"log/slog"
	"net/http"

	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/api/response"
	"github.com/whitemassif/website/internal/api/validation"
	"github.com/whitemassif/website/internal/clientlogo"
)

type clientResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	LogoURL  string `json:"logoUrl"`
}

type clientPageResponse struct {
	Items   []clientResponse `json:"items"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	HasMore bool             `json:"hasMore"`
}

// ClientsHandler serves pages of the client logo wall.
type ClientsHandler struct {
	logos  clientlogo.Repository
	assets clientlogo.AssetResolver
}

// NewClientsHandler creates a new ClientsHandler.
func NewClientsHandler(logos clientlogo.Repository, assets clientlogo.AssetResolver) *ClientsHandler {
	return &ClientsHandler{logos: logos, assets: assets}
}

// List handles GET /api/clients?search=&page=.
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	q, fieldErrors := validation.ValidateClientsQuery(r.URL.Query().Get("search"), r.URL.Query().Get("page"))
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", fieldErrors, requestID)
		return
	}

	logos, err := h.logos.List(r.Context())
	if err != nil {
		slog.Error("failed to list client logos", "error", err, "requestId", requestID)
		response.Err(w, http.StatusBadGateway, "CMS_UNAVAILABLE", "Client logos are unavailable", requestID)
		return
	}

	page := clientlogo.Paginate(logos, q.Search, q.Page)
	items := make([]clientResponse, len(page.Items))
	for i, l := range page.Items {
		items[i] = clientResponse{
			ID:       l.ID,
			Name:     l.Name,
			Category: l.Category,
			LogoURL:  clientlogo.BestLogoURL(h.assets, l),
		}
	}

	response.Success(w, http.StatusOK, clientPageResponse{
		Items:   items,
		Total:   page.Total,
		Page:    page.Page,
		HasMore: page.HasMore,
	}, requestID)
}
