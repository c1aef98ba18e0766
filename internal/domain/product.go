package domain

import (
	"context"
	"time"
)

// Product represents one catalog item in the stable response shape served to
// clients, independent of the store's column naming.
type Product struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name" validate:"required,min=1,max=255"`
	SKU            *string        `json:"sku"`
	Description    string         `json:"description"`
	Price          float64        `json:"price" validate:"gte=0"`
	OriginalPrice  *float64       `json:"originalPrice"`
	Brand          string         `json:"brand" validate:"required"`
	Category       string         `json:"category" validate:"required"`
	Subcategory    string         `json:"subcategory"`
	Images         []string       `json:"images"`
	Specifications map[string]any `json:"specifications"`
	InStock        bool           `json:"inStock"`
	Featured       bool           `json:"featured"`
	Tags           []string       `json:"tags"`
	Warranty       string         `json:"warranty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

// ProductUpdate carries a partial update: only non-nil fields change.
// OriginalPrice set to zero clears the pre-discount price.
type ProductUpdate struct {
	Name           *string         `json:"name"`
	SKU            *string         `json:"sku"`
	Description    *string         `json:"description"`
	Price          *float64        `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice  *float64        `json:"originalPrice"`
	Brand          *string         `json:"brand"`
	Category       *string         `json:"category"`
	Subcategory    *string         `json:"subcategory"`
	Images         *[]string       `json:"images"`
	Specifications *map[string]any `json:"specifications"`
	InStock        *bool           `json:"inStock"`
	Featured       *bool           `json:"featured"`
	Tags           *[]string       `json:"tags"`
	Warranty       *string         `json:"warranty"`
}

// ProductFilter is the normalized query spec for one list request. Zero values
// mean "filter absent". All present filters combine conjunctively.
type ProductFilter struct {
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	Search      string   `json:"search,omitempty"`

	// WideSearch extends the search OR-subclause to the brand column.
	// Used by the admin product listing.
	WideSearch bool `json:"-"`

	SortBy        string `json:"-"`
	SortAscending bool   `json:"-"`
	Page          int    `json:"-"`
	Limit         int    `json:"-"`
}

// Normalize clamps pagination and erases the "all" placeholder values the
// storefront sends for unset dropdown filters.
func (f *ProductFilter) Normalize(defaultLimit, maxLimit int) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if maxLimit > 0 && f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Brand == "all" {
		f.Brand = ""
	}
	if f.Category == "all" {
		f.Category = ""
	}
	if f.Subcategory == "all" {
		f.Subcategory = ""
	}
}

// Offset returns the number of rows to skip for the requested page
func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductView records a single catalog page view for statistics
type ProductView struct {
	ProductID string `json:"productId"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	SessionID string `json:"sessionId"`
	Referrer  string `json:"referrer"`
}

// ViewedProduct is one entry in the most-viewed statistics
type ViewedProduct struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Views     int    `json:"views"`
}

// ViewStats aggregates product view counters
type ViewStats struct {
	TotalViews  int              `json:"totalViews"`
	TopProducts []*ViewedProduct `json:"topProducts"`
}

// ProductRepository defines the interface for product data access. It is the
// single seam between the service and the backing store; any store able to
// filter, sort, range and count satisfies it.
type ProductRepository interface {
	// List retrieves one page of products matching the filter together with
	// the total count of matching rows disregarding pagination
	List(ctx context.Context, filter ProductFilter) ([]*Product, int, error)

	// GetByID retrieves a product by its identifier
	GetByID(ctx context.Context, id string) (*Product, error)

	// Create inserts a new product; the store assigns identity and timestamps
	Create(ctx context.Context, product *Product) (*Product, error)

	// Update applies a partial update and returns the updated product
	Update(ctx context.Context, id string, update ProductUpdate) (*Product, error)

	// Delete removes a product by identifier
	Delete(ctx context.Context, id string) error

	// PriceRange returns the lowest and highest product price
	PriceRange(ctx context.Context) (min, max float64, err error)

	// RecordView stores one product page view
	RecordView(ctx context.Context, view ProductView) error

	// ViewStats returns aggregate view counters
	ViewStats(ctx context.Context) (*ViewStats, error)
}
