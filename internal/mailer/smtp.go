package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/mobilipiu/catalog-api/internal/config"
	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
)

// SMTPMailer implements domain.Mailer over plain SMTP with PLAIN auth.
// When the relay credentials are absent every send fails with ErrMailSend;
// the caller decides whether that failure is fatal for the request.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *logger.Logger
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: log}
}

// Send relays one message. The multipart body carries both the plain-text and
// HTML renderings so any mail client can display it.
func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) (domain.SendResult, error) {
	if !m.cfg.Configured() {
		return domain.SendResult{}, fmt.Errorf("%w: smtp relay not configured", domain.ErrMailSend)
	}

	if err := ctx.Err(); err != nil {
		return domain.SendResult{}, fmt.Errorf("%w: %v", domain.ErrMailSend, err)
	}

	messageID := fmt.Sprintf("smtp-%d", time.Now().UnixNano())
	msg := buildMessage(m.cfg.FromName, m.cfg.Username, email, messageID)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.Username, []string{email.To}, msg); err != nil {
		m.logger.Error("SMTP send failed", err)
		return domain.SendResult{}, fmt.Errorf("%w: %v", domain.ErrMailSend, err)
	}

	result := domain.SendResult{
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	m.logger.WithFields(map[string]interface{}{
		"to":         email.To,
		"message_id": result.MessageID,
	}).Info("Email sent successfully")

	return result, nil
}

// buildMessage assembles a multipart/alternative MIME message
func buildMessage(fromName, from string, email domain.Email, messageID string) []byte {
	const boundary = "catalog-mail-boundary"

	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"Message-ID: <%s@%s>\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: multipart/alternative; boundary=%q\r\n"+
			"\r\n",
		fromName, from, email.To, email.Subject, messageID, "mobilipiu.hr", boundary,
	)

	body := fmt.Sprintf(
		"--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n"+
			"--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n"+
			"--%s--\r\n",
		boundary, email.Text, boundary, email.HTML, boundary,
	)

	return []byte(headers + body)
}
