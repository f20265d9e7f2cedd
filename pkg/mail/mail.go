// Package mail delivers email over SMTP. Application code depends on the
// Mailer interface so the transport can be replaced with a double in tests.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is one outgoing email.
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Mailer sends a single message. Fire-and-forget from the caller's point
// of view: there is no queue or retry behind this interface.
type Mailer interface {
	Send(msg Message) error
}

// SMTP holds relay connection settings.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// SMTPMailer is the production Mailer over net/smtp.
type SMTPMailer struct {
	cfg SMTP
}

func NewSMTPMailer(cfg SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers the message via the configured relay. Port 465 uses
// implicit TLS; anything else goes through SendMail's STARTTLS path.
func (m *SMTPMailer) Send(msg Message) error {
	cfg := m.cfg
	if cfg.Username == "" {
		return fmt.Errorf("mail: MAIL_USERNAME not configured")
	}

	from := fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	raw := buildRaw(from, msg)

	addr := cfg.Host + ":" + cfg.Port
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	if cfg.Port == "465" {
		return sendTLS(addr, cfg.Host, auth, cfg.From, msg.To, raw)
	}
	return smtp.SendMail(addr, auth, cfg.From, msg.To, raw)
}

func sendTLS(addr, host string, auth smtp.Auth, from string, to []string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return fmt.Errorf("mail: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

func buildRaw(from string, msg Message) []byte {
	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"\r\n", contentType))
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}
