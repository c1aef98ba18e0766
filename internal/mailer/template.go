package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

var contactHTML = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #8B4513; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 20px; }
    .field { margin-bottom: 15px; }
    .field label { font-weight: bold; color: #8B4513; }
    .footer { background-color: #8B4513; color: white; padding: 15px; text-align: center; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Nova poruka s web stranice</h1>
      <p>Mobili più - {{.Date}}</p>
    </div>
    <div class="content">
      <div class="field">
        <label>Ime:</label>
        <p>{{.Name}}</p>
      </div>
      <div class="field">
        <label>Email:</label>
        <p>{{.Email}}</p>
      </div>
      <div class="field">
        <label>Telefon:</label>
        <p>{{.Phone}}</p>
      </div>
      <div class="field">
        <label>Poruka:</label>
        <p>{{.Message}}</p>
      </div>
    </div>
    <div class="footer">
      <p>Ova poruka je poslana s kontakt forme na www.mobilipiu.hr</p>
      <p>Odgovorite direktno na email: {{.Email}}</p>
    </div>
  </div>
</body>
</html>`))

// ContactEmail renders the notification sent to the store for one
// contact-form submission
func ContactEmail(to string, msg *domain.ContactMessage) (domain.Email, error) {
	phone := "Nije naveden"
	if msg.Phone != nil && *msg.Phone != "" {
		phone = *msg.Phone
	}

	now := time.Now()
	data := struct {
		Name, Email, Phone, Message, Date string
	}{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   phone,
		Message: msg.Message,
		Date:    now.Format("02.01.2006."),
	}

	var html bytes.Buffer
	if err := contactHTML.Execute(&html, data); err != nil {
		return domain.Email{}, fmt.Errorf("failed to render contact email: %w", err)
	}

	text := fmt.Sprintf(
		"Nova poruka s web stranice - Mobili più\n\n"+
			"Ime: %s\nEmail: %s\nTelefon: %s\n\nPoruka:\n%s\n\n---\n"+
			"Poslano: %s u %s\nWeb stranica: www.mobilipiu.hr\n",
		msg.Name, msg.Email, phone, msg.Message,
		now.Format("02.01.2006."), now.Format("15:04:05"),
	)

	return domain.Email{
		To:      to,
		Subject: fmt.Sprintf("Nova poruka od %s - Mobili più", msg.Name),
		Text:    text,
		HTML:    html.String(),
	}, nil
}
