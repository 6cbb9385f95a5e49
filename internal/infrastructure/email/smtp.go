// Package email sends outbound mail over SMTP via gomail.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"mediticket/internal/shared/config"
)

type SMTPNotificationService struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotificationService(cfg config.EmailConfig) *SMTPNotificationService {
	return &SMTPNotificationService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// NotifyTicketCreated sends the submission confirmation. The body
// deliberately contains no medical content; the question itself is
// only readable inside the application.
func (s *SMTPNotificationService) NotifyTicketCreated(recipient, ticketID string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Nieuw medisch ticket ingediend")
	m.SetBody("text/plain",
		"Uw vraag werd geregistreerd. U ontvangt later een antwoord via de applicatie.")

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send ticket notification for %s: %w", ticketID, err)
	}
	return nil
}
