package notification

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mail is an outbound message. Both plain-text and HTML bodies are carried so
// the dry-run API response shows exactly what would go out.
type Mail struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// Sender delivers mail. Delivery confirmation is not observed beyond the
// error return.
type Sender interface {
	Send(mail Mail) error
}

// SMTPMailer sends through a plain SMTP relay configured from the
// environment. When SMTP is not configured, sends are skipped.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	enabled  bool
}

// NewSMTPMailerFromEnv reads SMTP config from environment variables.
func NewSMTPMailerFromEnv() *SMTPMailer {
	m := &SMTPMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
	if m.host != "" && m.port != "" && m.from != "" {
		m.enabled = true
		fmt.Printf("Email notifications enabled (SMTP: %s:%s)\n", m.host, m.port)
	} else {
		fmt.Println("Email notifications disabled (SMTP not configured)")
	}
	return m
}

func (m *SMTPMailer) Enabled() bool { return m.enabled }

// Send delivers the mail synchronously. The reminder sweep records a
// notification only after Send returns nil, so this must not fire and
// forget.
func (m *SMTPMailer) Send(mail Mail) error {
	if !m.enabled || len(mail.To) == 0 {
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, strings.Join(mail.To, ", "), mail.Subject, mail.HTML)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, mail.To, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", strings.Join(mail.To, ", "), err)
	}
	return nil
}
