package catalog

import (
	"context"
	"errors"

	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/fallback"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
)

// Service serves brand/category reference data. Unlike product data, every
// read here degrades to the embedded dataset when the store call fails, so
// the storefront navigation stays usable through outages.
type Service struct {
	refs     domain.ReferenceRepository
	products domain.ProductRepository
	policy   *fallback.Policy
	logger   *logger.Logger
}

// NewService creates a new catalog reference-data service
func NewService(
	refs domain.ReferenceRepository,
	products domain.ProductRepository,
	policy *fallback.Policy,
	log *logger.Logger,
) *Service {
	return &Service{
		refs:     refs,
		products: products,
		policy:   policy,
		logger:   log,
	}
}

// Brands retrieves all brands, falling back to the embedded list per call
func (s *Service) Brands(ctx context.Context) ([]*domain.Brand, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.Brands(), nil
	}

	brands, err := s.refs.Brands(ctx)
	if err != nil {
		s.logger.Error("Failed to load brands from store, serving static dataset", err)
		return s.policy.Brands(), nil
	}
	if len(brands) == 0 {
		return s.policy.Brands(), nil
	}

	return brands, nil
}

// BrandByName retrieves one brand by name, matched case-insensitively
func (s *Service) BrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.BrandByName(name)
	}

	brand, err := s.refs.BrandByName(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to load brand from store, serving static dataset", err)
		}
		return s.policy.BrandByName(name)
	}

	return brand, nil
}

// Categories retrieves all categories, falling back to the embedded list per call
func (s *Service) Categories(ctx context.Context) ([]*domain.Category, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.Categories(), nil
	}

	categories, err := s.refs.Categories(ctx)
	if err != nil {
		s.logger.Error("Failed to load categories from store, serving static dataset", err)
		return s.policy.Categories(), nil
	}
	if len(categories) == 0 {
		return s.policy.Categories(), nil
	}

	return categories, nil
}

// CategoryByName retrieves one category with its subcategory names
func (s *Service) CategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.CategoryByName(name)
	}

	category, err := s.refs.CategoryByName(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to load category from store, serving static dataset", err)
		}
		return s.policy.CategoryByName(name)
	}

	return category, nil
}

// Subcategories retrieves subcategories, optionally for one category id
func (s *Service) Subcategories(ctx context.Context, categoryID string) ([]*domain.Subcategory, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.Subcategories(), nil
	}

	subcategories, err := s.refs.Subcategories(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to load subcategories from store, serving static dataset", err)
		return s.policy.Subcategories(), nil
	}

	return subcategories, nil
}

// FilterOptions returns the distinct filter values and price bounds for the
// storefront dropdowns
func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.FilterOptions(), nil
	}

	brands, categories, subcategories, err := s.refs.FilterNames(ctx)
	if err != nil {
		s.logger.Error("Failed to load filter options from store, serving static dataset", err)
		return s.policy.FilterOptions(), nil
	}

	min, max, err := s.products.PriceRange(ctx)
	if err != nil {
		s.logger.Error("Failed to load price range from store, serving static dataset", err)
		return s.policy.FilterOptions(), nil
	}

	return &domain.FilterOptions{
		Brands:        brands,
		Categories:    categories,
		Subcategories: subcategories,
		PriceRange:    domain.PriceRange{Min: min, Max: max},
	}, nil
}
