package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactMessage is one persisted contact-form submission
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,min=1,max=255"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Message   string    `json:"message" db:"message" validate:"required,min=1,max=5000"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// WorkingHours lists opening times per weekday
type WorkingHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// Location is a map coordinate pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreInfo is the static storefront contact payload
type StoreInfo struct {
	Name         string       `json:"name"`
	Owner        string       `json:"owner"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	WorkingHours WorkingHours `json:"workingHours"`
	Brands       []string     `json:"brands"`
	Services     []string     `json:"services"`
	Location     Location     `json:"location"`
}

// ContactRepository defines data access for contact messages
type ContactRepository interface {
	// Create persists a new contact message
	Create(ctx context.Context, msg *ContactMessage) error

	// List retrieves all contact messages, newest first
	List(ctx context.Context) ([]*ContactMessage, error)
}

// Email is one outbound message for the mail relay
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// SendResult reports a successful relay delivery
type SendResult struct {
	MessageID string    `json:"messageId"`
	SentAt    time.Time `json:"sentAt"`
}

// Mailer defines the transactional mail relay seam
type Mailer interface {
	Send(ctx context.Context, email Email) (SendResult, error)
}
