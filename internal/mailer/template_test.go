package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

func TestContactEmail_RendersSubmission(t *testing.T) {
	phone := "+385 91 111 2222"
	msg := &domain.ContactMessage{
		Name:    "Ivana Horvat",
		Email:   "ivana@example.com",
		Phone:   &phone,
		Message: "Zanima me perilica Bosch.",
	}

	email, err := ContactEmail("info@mobilipiu.hr", msg)

	require.NoError(t, err)
	assert.Equal(t, "info@mobilipiu.hr", email.To)
	assert.Equal(t, "Nova poruka od Ivana Horvat - Mobili più", email.Subject)
	assert.Contains(t, email.HTML, "Ivana Horvat")
	assert.Contains(t, email.HTML, "+385 91 111 2222")
	assert.Contains(t, email.HTML, "Zanima me perilica Bosch.")
	assert.Contains(t, email.Text, "ivana@example.com")
}

func TestContactEmail_PhoneDefaultsWhenAbsent(t *testing.T) {
	msg := &domain.ContactMessage{
		Name:    "Marko",
		Email:   "marko@example.com",
		Message: "Upit",
	}

	email, err := ContactEmail("info@mobilipiu.hr", msg)

	require.NoError(t, err)
	assert.Contains(t, email.HTML, "Nije naveden")
	assert.Contains(t, email.Text, "Nije naveden")
}

func TestContactEmail_EscapesHTMLInMessage(t *testing.T) {
	msg := &domain.ContactMessage{
		Name:    "Marko",
		Email:   "marko@example.com",
		Message: "<script>alert(1)</script>",
	}

	email, err := ContactEmail("info@mobilipiu.hr", msg)

	require.NoError(t, err)
	assert.NotContains(t, email.HTML, "<script>")
}
