package handler

import (
	"errors"
	"net/http"

	"github.com/mobilipiu/catalog-api/internal/delivery/http/request"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/response"
	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	"github.com/mobilipiu/catalog-api/internal/usecase/contact"
)

// ContactHandler handles HTTP requests for the contact form and store info
type ContactHandler struct {
	service *contact.Service
	logger  *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service *contact.Service, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  log,
	}
}

// SubmitContactRequest represents the contact form body
type SubmitContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// Info handles GET /api/contact
func (h *ContactHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.Info())
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Neispravan format zahtjeva")
		return
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if _, err := h.service.Submit(r.Context(), msg); err != nil {
		h.handleError(w, err)
		return
	}

	response.Message(w, http.StatusOK,
		"Vaša poruka je uspješno poslana! Odgovorit ćemo vam u najkraćem mogućem roku.")
}

// Messages handles GET /api/contact/messages
func (h *ContactHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.Messages(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, messages)
}

// handleError maps service layer errors to HTTP responses
func (h *ContactHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contact.ErrMissingFields):
		response.Error(w, http.StatusBadRequest, "Ime, email i poruka su obavezni podaci")
	case errors.Is(err, contact.ErrInvalidEmail):
		response.Error(w, http.StatusBadRequest, "Molimo unesite valjanu email adresu")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Neispravni podaci")
	case errors.Is(err, domain.ErrStoreUnavailable):
		response.Error(w, http.StatusServiceUnavailable, "Baza podataka nije konfigurirana")
	default:
		h.logger.Error("Internal error in contact handler", err)
		response.Error(w, http.StatusInternalServerError,
			"Došlo je do greške pri slanju poruke. Molimo pokušajte ponovno.")
	}
}
