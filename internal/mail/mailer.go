package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"weekly-meal-planner/internal/config"
)

// Mailer submits the weekly plan email over implicit-TLS SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer validates the credential pair and recipient up front so a
// misconfigured run fails before any work is done.
func NewMailer(cfg config.SMTPConfig) (*Mailer, error) {
	if cfg.Sender == "" || cfg.Password == "" {
		return nil, fmt.Errorf("smtp sender and password are required")
	}
	if cfg.Recipient == "" {
		return nil, fmt.Errorf("smtp recipient is required")
	}
	return &Mailer{cfg: cfg}, nil
}

// Send delivers one HTML email to the fixed recipient. There are no
// retries; any failure propagates to the caller.
func (m *Mailer) Send(subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.cfg.Sender, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp authentication failed: %w", err)
	}

	if err := client.Mail(m.cfg.Sender); err != nil {
		return fmt.Errorf("smtp MAIL command failed: %w", err)
	}
	if err := client.Rcpt(m.cfg.Recipient); err != nil {
		return fmt.Errorf("smtp RCPT command failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA command failed: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.Sender)
	fmt.Fprintf(&msg, "To: %s\r\n", m.cfg.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if _, err := w.Write([]byte(msg.String())); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish email body: %w", err)
	}

	return client.Quit()
}
