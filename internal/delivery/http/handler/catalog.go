package handler

import (
	"errors"
	"net/http"

	"github.com/mobilipiu/catalog-api/internal/delivery/http/request"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/response"
	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	"github.com/mobilipiu/catalog-api/internal/usecase/catalog"
)

// CatalogHandler handles HTTP requests for brand and category reference data
type CatalogHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  log,
	}
}

// Brands handles GET /api/brands
func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.Brands(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, brands)
}

// BrandByName handles GET /api/brands/{name}
func (h *CatalogHandler) BrandByName(w http.ResponseWriter, r *http.Request) {
	name, err := request.GetStringParam(r, "name")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Nedostaje naziv branda")
		return
	}

	brand, err := h.service.BrandByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Brand nije pronađen")
			return
		}
		h.handleError(w, err)
		return
	}

	response.Success(w, brand)
}

// Categories handles GET /api/categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, categories)
}

// CategoryByName handles GET /api/categories/{category}
func (h *CatalogHandler) CategoryByName(w http.ResponseWriter, r *http.Request) {
	name, err := request.GetStringParam(r, "category")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Nedostaje naziv kategorije")
		return
	}

	category, err := h.service.CategoryByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Kategorija nije pronađena")
			return
		}
		h.handleError(w, err)
		return
	}

	response.Success(w, category)
}

// Subcategories handles GET /api/subcategories
func (h *CatalogHandler) Subcategories(w http.ResponseWriter, r *http.Request) {
	categoryID := request.GetStringQuery(r, "category_id")

	subcategories, err := h.service.Subcategories(r.Context(), categoryID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, subcategories)
}

// FilterOptions handles GET /api/filter-options
func (h *CatalogHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, options)
}

// handleError maps service layer errors to HTTP responses
func (h *CatalogHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Podaci nisu pronađeni")
	default:
		h.logger.Error("Internal error in catalog handler", err)
		response.Error(w, http.StatusInternalServerError, "Greška pri dohvaćanju podataka")
	}
}
