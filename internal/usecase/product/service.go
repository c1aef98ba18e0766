package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/fallback"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	pkgvalidator "github.com/mobilipiu/catalog-api/internal/pkg/validator"
)

// catalogSubject is the NATS subject product lifecycle events are published on
const catalogSubject = "catalog.events"

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Event is the payload published for a product lifecycle change
type Event struct {
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	ProductID  string          `json:"product_id"`
	Product    *domain.Product `json:"product,omitempty"`
}

// Service handles product business logic: filter normalization, pagination,
// validation, the fallback policy for degraded mode, and lifecycle events.
type Service struct {
	repo            domain.ProductRepository
	policy          *fallback.Policy
	publisher       EventPublisher
	validate        *validator.Validate
	logger          *logger.Logger
	defaultPageSize int
	maxPageSize     int
}

// NewService creates a new product service. publisher may be nil when event
// publishing is disabled.
func NewService(
	repo domain.ProductRepository,
	policy *fallback.Policy,
	publisher EventPublisher,
	defaultPageSize, maxPageSize int,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:            repo,
		policy:          policy,
		publisher:       publisher,
		validate:        pkgvalidator.Get(),
		logger:          log,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List retrieves one page of products matching the filter. While the store is
// unconfigured it serves the placeholder listing; once configured, store
// errors surface instead of degrading to stale mock products.
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, domain.Page, error) {
	filter.Normalize(s.defaultPageSize, s.maxPageSize)

	if !s.policy.StoreConfigured() {
		items, total := s.policy.PlaceholderListing()
		return items, domain.NewPage(filter.Page, filter.Limit, total), nil
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, domain.Page{}, err
	}

	return items, domain.NewPage(filter.Page, filter.Limit, total), nil
}

// GetByID retrieves a product by ID, or the placeholder product while the
// store is unconfigured
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if !s.policy.StoreConfigured() {
		return s.policy.PlaceholderProduct(id), nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	return product, nil
}

// Create validates and inserts a new product
func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.policy.CheckWrite(); err != nil {
		return nil, err
	}

	if missing := missingRequiredFields(product); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	applyDefaults(product)

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	saved, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error("Failed to create product", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": saved.ID,
		"name":       saved.Name,
	}).Info("Product created successfully")

	s.publishEvent("product.created", saved.ID, saved)

	return saved, nil
}

// Update applies a partial update: only supplied fields change
func (s *Service) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	if err := s.policy.CheckWrite(); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(update); err != nil {
		s.logger.Error("Product update validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to update product", err)
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": updated.ID,
		"name":       updated.Name,
	}).Info("Product updated successfully")

	s.publishEvent("product.updated", updated.ID, updated)

	return updated, nil
}

// Delete removes a product by identifier
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.policy.CheckWrite(); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to delete product", err)
		}
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	s.publishEvent("product.deleted", id, nil)

	return nil
}

// TrackView records one product page view
func (s *Service) TrackView(ctx context.Context, view domain.ProductView) error {
	if err := s.policy.CheckWrite(); err != nil {
		return err
	}

	if err := s.repo.RecordView(ctx, view); err != nil {
		s.logger.Error("Failed to record product view", err)
		return err
	}

	return nil
}

// ViewStats returns aggregate view counters
func (s *Service) ViewStats(ctx context.Context) (*domain.ViewStats, error) {
	if !s.policy.StoreConfigured() {
		return nil, domain.ErrStoreUnavailable
	}

	stats, err := s.repo.ViewStats(ctx)
	if err != nil {
		s.logger.Error("Failed to load view statistics", err)
		return nil, err
	}

	return stats, nil
}

// missingRequiredFields lists the absent create-request fields in their
// documented order
func missingRequiredFields(p *domain.Product) []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Price <= 0 {
		missing = append(missing, "price")
	}
	if p.Brand == "" {
		missing = append(missing, "brand")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// applyDefaults fills the documented defaults before insert
func applyDefaults(p *domain.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]any{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Warranty == "" {
		p.Warranty = "2 godine"
	}
}

// publishEvent publishes a product event (non-blocking)
func (s *Service) publishEvent(eventType, productID string, product *domain.Product) {
	if s.publisher == nil {
		return
	}

	event := Event{
		EventType:  eventType,
		OccurredAt: time.Now(),
		ProductID:  productID,
		Product:    product,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal product event", err)
		return
	}

	// Publish in background to avoid blocking the request
	go func() {
		if err := s.publisher.Publish(context.Background(), catalogSubject, data); err != nil {
			s.logger.Error("Failed to publish product event", err)
		}
	}()
}
