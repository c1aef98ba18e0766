package fallback

import (
	"strings"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

// Policy is the single place that decides when the service degrades to the
// embedded dataset. Reads never mix store and static results: a call is served
// entirely from one or the other.
//
// The rules:
//   - store never configured: every read serves static data, every write is
//     rejected with ErrStoreUnavailable;
//   - store configured but a reference-data call failed: that call (and only
//     that call) serves static data;
//   - store configured but a product call failed: the error surfaces. Stale
//     placeholder products must not be mixed into a live catalog.
type Policy struct {
	storeConfigured bool
}

// NewPolicy creates a fallback policy for the given store configuration state
func NewPolicy(storeConfigured bool) *Policy {
	return &Policy{storeConfigured: storeConfigured}
}

// StoreConfigured reports whether the Data Store client was initialized at startup
func (p *Policy) StoreConfigured() bool {
	return p.storeConfigured
}

// CheckWrite rejects write operations while the store is unconfigured.
// Writes are never absorbed into the static dataset.
func (p *Policy) CheckWrite() error {
	if !p.storeConfigured {
		return domain.ErrStoreUnavailable
	}
	return nil
}

// Brands returns the embedded brand list
func (p *Policy) Brands() []*domain.Brand {
	return staticBrands
}

// BrandByName finds an embedded brand by name, case-insensitively
func (p *Policy) BrandByName(name string) (*domain.Brand, error) {
	for _, b := range staticBrands {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Categories returns the embedded category list
func (p *Policy) Categories() []*domain.Category {
	return staticCategories
}

// CategoryByName finds an embedded category by exact name
func (p *Policy) CategoryByName(name string) (*domain.Category, error) {
	for _, c := range staticCategories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Subcategories flattens the embedded categories into subcategory entries
func (p *Policy) Subcategories() []*domain.Subcategory {
	var subs []*domain.Subcategory
	for _, c := range staticCategories {
		for _, name := range c.Subcategories {
			subs = append(subs, &domain.Subcategory{
				Name:         name,
				CategoryName: c.Name,
			})
		}
	}
	return subs
}

// FilterOptions derives dropdown filter values from the embedded dataset
func (p *Policy) FilterOptions() *domain.FilterOptions {
	brands := make([]string, 0, len(staticBrands))
	for _, b := range staticBrands {
		brands = append(brands, b.Name)
	}

	categories := make([]string, 0, len(staticCategories))
	var subcategories []string
	for _, c := range staticCategories {
		categories = append(categories, c.Name)
		subcategories = append(subcategories, c.Subcategories...)
	}

	return &domain.FilterOptions{
		Brands:        brands,
		Categories:    categories,
		Subcategories: subcategories,
		PriceRange:    domain.PriceRange{Min: 100, Max: 5000},
	}
}

// PlaceholderProduct returns the single defined placeholder product, echoing
// the requested id
func (p *Policy) PlaceholderProduct(id string) *domain.Product {
	return placeholderProduct(id)
}

// PlaceholderListing returns a one-product page for unconfigured-store list calls
func (p *Policy) PlaceholderListing() ([]*domain.Product, int) {
	return []*domain.Product{placeholderProduct("1")}, 1
}

// StoreInfo returns the static storefront contact payload
func (p *Policy) StoreInfo() domain.StoreInfo {
	return staticStoreInfo
}
