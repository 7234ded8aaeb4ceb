package mailer

import (
	"context"

	"github.com/wneessen/go-mail"
)

// Message is one outbound plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Notifier delivers messages through an external mail transport. Delivery is
// best-effort: a rejected send surfaces as an error, nothing is retried.
type Notifier interface {
	Send(ctx context.Context, m Message) error
}

// SMTP sends messages through an authenticated SMTP account.
type SMTP struct {
	client *mail.Client
}

func NewSMTP(host string, port int, user, pass string) (*SMTP, error) {
	c, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		return nil, err
	}
	return &SMTP{client: c}, nil
}

func (s *SMTP) Send(ctx context.Context, m Message) error {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(m.To); err != nil {
		return err
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	return s.client.DialAndSendWithContext(ctx, msg)
}
