package handler

import (
	"net/http"

	"nutriplan/internal/service"
)

// CatalogHandler serves the published questionnaire template
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// Get handles GET /v1/catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	template, err := h.catalogSvc.Latest(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if template == nil {
		writeError(w, http.StatusNotFound, "no catalog published")
		return
	}
	writeJSON(w, http.StatusOK, template)
}
