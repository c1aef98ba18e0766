package handler

import (
	"errors"
	"net/http"

	"github.com/mobilipiu/catalog-api/internal/delivery/http/request"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/response"
	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	"github.com/mobilipiu/catalog-api/internal/usecase/product"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *product.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// CreateProductRequest represents the request body for creating a product.
// inStock defaults to true when omitted.
type CreateProductRequest struct {
	Name           string         `json:"name"`
	SKU            *string        `json:"sku"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	OriginalPrice  *float64       `json:"originalPrice"`
	Brand          string         `json:"brand"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory"`
	Images         []string       `json:"images"`
	Specifications map[string]any `json:"specifications"`
	InStock        *bool          `json:"inStock"`
	Featured       *bool          `json:"featured"`
	Tags           []string       `json:"tags"`
	Warranty       string         `json:"warranty"`
}

func (req *CreateProductRequest) toDomain() *domain.Product {
	p := &domain.Product{
		Name:           req.Name,
		SKU:            req.SKU,
		Description:    req.Description,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Brand:          req.Brand,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Images:         req.Images,
		Specifications: req.Specifications,
		InStock:        true,
		Tags:           req.Tags,
		Warranty:       req.Warranty,
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	return p
}

// buildFilter assembles the product filter from the listing query string
func buildFilter(r *http.Request) domain.ProductFilter {
	return domain.ProductFilter{
		Brand:         request.GetStringQuery(r, "brand"),
		Category:      request.GetStringQuery(r, "category"),
		Subcategory:   request.GetStringQuery(r, "subcategory"),
		MinPrice:      request.GetFloatQuery(r, "minPrice"),
		MaxPrice:      request.GetFloatQuery(r, "maxPrice"),
		InStock:       request.GetBoolQuery(r, "inStock"),
		Featured:      request.GetBoolQuery(r, "featured"),
		Search:        request.GetStringQuery(r, "search"),
		SortBy:        request.GetStringQuery(r, "sortBy"),
		SortAscending: request.GetStringQuery(r, "sortOrder") == "asc",
		Page:          request.GetIntQuery(r, "page", 1),
		Limit:         request.GetIntQuery(r, "limit", 0),
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := buildFilter(r)

	products, page, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"pagination": page,
		"filters":    filter,
	})
}

// AdminList handles GET /api/admin/products. Same listing with the search
// term also matched against the brand column.
func (h *ProductHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	filter := buildFilter(r)
	filter.WideSearch = true

	products, page, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"pagination": page,
		"filters":    filter,
	})
}

// GetByID handles GET /api/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan ID proizvoda")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan format zahtjeva")
		return
	}

	if req.Name == "" || req.Description == "" || req.Price <= 0 || req.Brand == "" || req.Category == "" {
		response.Error(w, http.StatusBadRequest, "Nedostaju potrebna polja: name, description, price, brand, category")
		return
	}

	saved, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, saved)
}

// Update handles PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan ID proizvoda")
		return
	}

	var update domain.ProductUpdate
	if err := request.DecodeJSON(r, &update); err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan format zahtjeva")
		return
	}

	updated, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan ID proizvoda")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Proizvod uspješno obrisan")
}

// TrackView handles POST /api/products/{id}/view
func (h *ProductHandler) TrackView(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetStringParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan ID proizvoda")
		return
	}

	var body struct {
		SessionID string `json:"sessionId"`
		Referrer  string `json:"referrer"`
	}
	// The view body is optional
	_ = request.DecodeJSON(r, &body)

	view := domain.ProductView{
		ProductID: id,
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
		SessionID: body.SessionID,
		Referrer:  body.Referrer,
	}

	if err := h.service.TrackView(r.Context(), view); err != nil {
		h.handleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Pregled zabilježen uspješno")
}

// ViewStats handles GET /api/products/stats/views
func (h *ProductHandler) ViewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ViewStats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, stats)
}

// handleError maps service layer errors to HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Proizvod nije pronađen")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Neispravni podaci proizvoda")
	case errors.Is(err, domain.ErrStoreUnavailable):
		response.Error(w, http.StatusServiceUnavailable, "Baza podataka nije konfigurirana")
	default:
		h.logger.Error("Internal error in product handler", err)
		response.Error(w, http.StatusInternalServerError, "Greška pri dohvaćanju proizvoda")
	}
}
