package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// VerificationData feeds the verification template.
type VerificationData struct {
	Username string
	Code     string
	AppName  string
}

// Config holds SMTP settings.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// Sender delivers notifications. The auth service depends on this interface
// only; tests substitute a recording fake.
type Sender interface {
	Send(email *Email) error
	SendVerificationCode(to, username, code string) error
}
