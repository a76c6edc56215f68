package email

import "fmt"

// DefaultConfig returns development defaults.
func DefaultConfig() Config {
	return Config{
		SMTPHost:  "localhost",
		SMTPPort:  587,
		FromEmail: "noreply@kilimopesa.co.ke",
		FromName:  "KilimoPesa",
		UseTLS:    true,
	}
}

// Validate checks the configuration before a sender is built.
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
