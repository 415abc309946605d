package services

// EmailSender delivers a single HTML message. Implementations: Resend
// API and plain SMTP.
type EmailSender interface {
	Send(to string, subject string, body string) error
}
