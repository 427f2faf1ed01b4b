package notification

import (
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"HospitalConnect/config"
)

// Mailer is the outbound mail transport. A send either reaches the relay or
// returns an error; there is no queueing or retry.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	port, err := strconv.Atoi(config.Env("SMTP_PORT", "587"))
	if err != nil {
		log.Println("Invalid SMTP_PORT, falling back to 587:", err)
		port = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(
			config.Env("SMTP_HOST", "smtp.gmail.com"),
			port,
			config.Env("SMTP_USER", ""),
			config.Env("SMTP_PASS", ""),
		),
		from: config.Env("MAIL_FROM", "Hospital System <no-reply@hospital.local>"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Println("Error sending mail to", to, ":", err)
		return err
	}
	return nil
}
