package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/fallback"
	"github.com/mobilipiu/catalog-api/internal/mailer"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	pkgvalidator "github.com/mobilipiu/catalog-api/internal/pkg/validator"
)

// catalogSubject is the NATS subject contact events are published on
const catalogSubject = "catalog.events"

var (
	// ErrMissingFields marks a submission without name, email or message
	ErrMissingFields = fmt.Errorf("%w: name, email and message are required", domain.ErrInvalidInput)

	// ErrInvalidEmail marks a submission with a malformed email address
	ErrInvalidEmail = fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Event is the payload published for a received contact message
type Event struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	MessageID  string    `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
}

// Service handles contact-form submissions: validation, best-effort
// persistence, the email relay to the store inbox, and the received event.
type Service struct {
	repo      domain.ContactRepository
	mail      domain.Mailer
	policy    *fallback.Policy
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
	recipient string
}

// NewService creates a new contact service. repo may be nil while the store
// is unconfigured and publisher may be nil when event publishing is disabled.
func NewService(
	repo domain.ContactRepository,
	mail domain.Mailer,
	policy *fallback.Policy,
	publisher EventPublisher,
	recipient string,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		mail:      mail,
		policy:    policy,
		publisher: publisher,
		validate:  pkgvalidator.Get(),
		logger:    log,
		recipient: recipient,
	}
}

// Info returns the static storefront contact payload
func (s *Service) Info() domain.StoreInfo {
	return s.policy.StoreInfo()
}

// Submit validates a contact-form submission, stores it when the store is
// available and relays it to the store inbox. Persistence is best effort:
// a failed insert is logged and the email still goes out, but a failed
// email surfaces even when the row was written.
func (s *Service) Submit(ctx context.Context, msg *domain.ContactMessage) (domain.SendResult, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return domain.SendResult{}, ErrMissingFields
	}
	if err := s.validate.Var(msg.Email, "email"); err != nil {
		return domain.SendResult{}, ErrInvalidEmail
	}
	if err := s.validate.Struct(msg); err != nil {
		return domain.SendResult{}, domain.ErrInvalidInput
	}

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	if s.policy.StoreConfigured() {
		if err := s.repo.Create(ctx, msg); err != nil {
			s.logger.Error("Failed to store contact message, relaying anyway", err)
		}
	}

	email, err := mailer.ContactEmail(s.recipient, msg)
	if err != nil {
		s.logger.Error("Failed to render contact email", err)
		return domain.SendResult{}, fmt.Errorf("%w: %v", domain.ErrMailSend, err)
	}

	result, err := s.mail.Send(ctx, email)
	if err != nil {
		s.logger.Error("Failed to send contact email", err)
		return domain.SendResult{}, err
	}

	s.logger.WithFields(map[string]interface{}{
		"message_id": msg.ID.String(),
		"email":      msg.Email,
	}).Info("Contact message relayed successfully")

	s.publishEvent(msg)

	return result, nil
}

// Messages retrieves all stored contact messages, newest first
func (s *Service) Messages(ctx context.Context) ([]*domain.ContactMessage, error) {
	if !s.policy.StoreConfigured() {
		return nil, domain.ErrStoreUnavailable
	}

	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list contact messages", err)
		return nil, err
	}

	return messages, nil
}

// publishEvent publishes a contact.received event (non-blocking)
func (s *Service) publishEvent(msg *domain.ContactMessage) {
	if s.publisher == nil {
		return
	}

	event := Event{
		EventType:  "contact.received",
		OccurredAt: time.Now(),
		MessageID:  msg.ID.String(),
		Name:       msg.Name,
		Email:      msg.Email,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal contact event", err)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), catalogSubject, data); err != nil {
			s.logger.Error("Failed to publish contact event", err)
		}
	}()
}
