package domain

import "context"

// Brand is one of the manufacturers the store carries
type Brand struct {
	ID           string   `json:"_id,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Logo         string   `json:"logo"`
	Website      string   `json:"website"`
	Specialties  []string `json:"specialties"`
	ProductCount int      `json:"productCount"`
}

// Category groups products and carries its subcategory names
type Category struct {
	ID            string   `json:"_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Slug          string   `json:"slug"`
	Image         string   `json:"image"`
	Subcategories []string `json:"subcategories"`
	ProductCount  int      `json:"productCount"`
}

// Subcategory is a second-level grouping tied to a category
type Subcategory struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// PriceRange bounds the storefront price slider
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions carries the distinct values for the storefront filter dropdowns
type FilterOptions struct {
	Brands        []string   `json:"brands"`
	Categories    []string   `json:"categories"`
	Subcategories []string   `json:"subcategories"`
	PriceRange    PriceRange `json:"priceRange"`
}

// ReferenceRepository defines data access for brand/category reference data
type ReferenceRepository interface {
	// Brands retrieves all brands ordered by name
	Brands(ctx context.Context) ([]*Brand, error)

	// BrandByName retrieves a brand by name, matched case-insensitively
	BrandByName(ctx context.Context, name string) (*Brand, error)

	// Categories retrieves all categories ordered by name
	Categories(ctx context.Context) ([]*Category, error)

	// CategoryByName retrieves a category by exact name
	CategoryByName(ctx context.Context, name string) (*Category, error)

	// Subcategories retrieves subcategories, optionally for one category id
	Subcategories(ctx context.Context, categoryID string) ([]*Subcategory, error)

	// FilterNames returns the distinct brand/category/subcategory names
	FilterNames(ctx context.Context) (brands, categories, subcategories []string, err error)
}
