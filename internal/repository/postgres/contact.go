package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

// ContactRepository implements domain.ContactRepository for PostgreSQL
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new PostgreSQL contact-message repository
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create persists a new contact message
func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO contact_messages (id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, msg.ID, msg.Name, msg.Email, msg.Phone, msg.Message, msg.CreatedAt)
	return err
}

// List retrieves all contact messages, newest first
func (r *ContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	var messages []*domain.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, err
	}

	return messages, nil
}
