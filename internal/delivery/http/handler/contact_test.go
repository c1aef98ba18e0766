package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/fallback"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	"github.com/mobilipiu/catalog-api/internal/usecase/contact"
)

// MockMailer is a mock implementation of domain.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, email domain.Email) (domain.SendResult, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.SendResult), args.Error(1)
}

func newContactRouter(mail domain.Mailer, storeConfigured bool) http.Handler {
	log := logger.New("test")
	service := contact.NewService(nil, mail, fallback.NewPolicy(storeConfigured), nil, "info@mobilipiu.hr", log)
	h := NewContactHandler(service, log)

	r := chi.NewRouter()
	r.Get("/api/contact", h.Info)
	r.Post("/api/contact", h.Submit)
	r.Get("/api/contact/messages", h.Messages)
	return r
}

func TestContactHandler_Info(t *testing.T) {
	router := newContactRouter(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Mobili più", body.Data.Name)
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	mockMailer := new(MockMailer)
	router := newContactRouter(mockMailer, false)

	payload := map[string]string{"name": "Ivana"}
	data, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ime, email i poruka su obavezni podaci", body["message"])
	mockMailer.AssertNotCalled(t, "Send")
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	mockMailer := new(MockMailer)
	router := newContactRouter(mockMailer, false)

	payload := map[string]string{
		"name":    "Ivana Horvat",
		"email":   "nije-email",
		"message": "Zanima me perilica.",
	}
	data, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Molimo unesite valjanu email adresu", body["message"])
}

func TestContactHandler_Submit_Success(t *testing.T) {
	mockMailer := new(MockMailer)
	router := newContactRouter(mockMailer, false)

	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return(domain.SendResult{MessageID: "smtp-1"}, nil)

	payload := map[string]string{
		"name":    "Ivana Horvat",
		"email":   "ivana@example.com",
		"message": "Zanima me perilica Bosch.",
	}
	data, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t,
		"Vaša poruka je uspješno poslana! Odgovorit ćemo vam u najkraćem mogućem roku.",
		body["message"])
	mockMailer.AssertExpectations(t)
}

func TestContactHandler_Submit_MailFailure(t *testing.T) {
	mockMailer := new(MockMailer)
	router := newContactRouter(mockMailer, false)

	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return(domain.SendResult{}, domain.ErrMailSend)

	payload := map[string]string{
		"name":    "Ivana Horvat",
		"email":   "ivana@example.com",
		"message": "Zanima me perilica Bosch.",
	}
	data, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t,
		"Došlo je do greške pri slanju poruke. Molimo pokušajte ponovno.",
		body["message"])
}

func TestContactHandler_Messages_UnconfiguredStoreRejected(t *testing.T) {
	router := newContactRouter(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Baza podataka nije konfigurirana", body["message"])
}
