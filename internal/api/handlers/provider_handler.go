package handlers

import (
	"net/http"

	"github.com/sTrAy74/swi-web/internal/discovery"
	"github.com/sTrAy74/swi-web/internal/gateway"
	"github.com/sTrAy74/swi-web/internal/infrastructure/observability"
)

// ProviderHandler serves the provider discovery endpoints
type ProviderHandler struct {
	gw      *gateway.Client
	metrics *observability.Metrics
}

// NewProviderHandler creates a provider handler
func NewProviderHandler(gw *gateway.Client, metrics *observability.Metrics) *ProviderHandler {
	return &ProviderHandler{gw: gw, metrics: metrics}
}

// providerListPayload is the discovery list response: projected cards plus
// everything the page needs to render pagination and a shareable URL.
type providerListPayload struct {
	Providers      []discovery.ProviderCard  `json:"providers"`
	Meta           gateway.ProvidersListMeta `json:"meta"`
	Pages          []int                     `json:"pages"`
	HasPrev        bool                      `json:"hasPrev"`
	HasNext        bool                      `json:"hasNext"`
	CanonicalQuery string                    `json:"canonicalQuery"`
}

// ListProviders handles GET /api/providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	filter, page := discovery.Decode(r.URL.Query())

	observability.RecordSearch(r.Context(), h.metrics)

	resp, err := h.gw.ListProviders(r.Context(), discovery.ToQuery(filter, page))
	if err != nil {
		respondGatewayError(w, err, "Failed to load providers")
		return
	}

	cards := make([]discovery.ProviderCard, 0, len(resp.Data))
	for _, item := range resp.Data {
		cards = append(cards, discovery.ProjectCard(h.gw.BaseURL(), item))
	}

	pager := discovery.Pager{Current: resp.Meta.CurrentPage, Total: resp.Meta.TotalPages}
	respondWithJSON(w, http.StatusOK, providerListPayload{
		Providers:      cards,
		Meta:           resp.Meta,
		Pages:          pager.Pages(),
		HasPrev:        pager.HasPrev(),
		HasNext:        pager.HasNext(),
		CanonicalQuery: discovery.CanonicalQuery(filter, page),
	})
}

// GetProvider handles GET /api/providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "provider ID is required")
		return
	}

	resp, err := h.gw.GetProvider(r.Context(), id)
	if err != nil {
		respondGatewayError(w, err, "Failed to load provider")
		return
	}

	respondWithJSON(w, http.StatusOK, discovery.ProjectPage(h.gw.BaseURL(), resp.Data))
}
