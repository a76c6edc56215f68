package email

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail over SMTP via gomail.
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password)
	if config.UseTLS {
		dialer.TLSConfig = &tls.Config{ServerName: config.SMTPHost}
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
		dialer:    dialer,
	}, nil
}

// Send delivers a prepared message. Failures surface synchronously; callers
// decide whether to compensate.
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendVerificationCode sends the one-time code. The code appears only in the
// message body, never in any API response.
func (s *SMTPSender) SendVerificationCode(to, username, code string) error {
	data := VerificationData{
		Username: username,
		Code:     code,
		AppName:  s.config.FromName,
	}

	htmlBody, err := s.templates.Render("verification", data)
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("Verify Your %s Account", s.config.FromName),
		Body:     HTMLToText(htmlBody),
		HTMLBody: htmlBody,
	})
}
