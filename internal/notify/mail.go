package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Skotchmaster/vape_shop/internal/checkout"
)

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailNotifier e-mails the order summary to the shop owner.
type MailNotifier struct {
	Sender Sender
	From   string
	To     string
}

func NewMailNotifier(host string, port int, user, password, from, to string) *MailNotifier {
	if from == "" {
		from = user
	}
	return &MailNotifier{
		Sender: gomail.NewDialer(host, port, user, password),
		From:   from,
		To:     to,
	}
}

func (m *MailNotifier) Message(r checkout.Record) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", checkout.Subject(r))
	if r.Customer.Email != "" {
		msg.SetHeader("Reply-To", r.Customer.Email)
	}
	msg.SetBody("text/plain", checkout.Summary(r))
	return msg
}

func (m *MailNotifier) Notify(ctx context.Context, r checkout.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.Sender.DialAndSend(m.Message(r)); err != nil {
		return fmt.Errorf("mail: send order %s: %w", r.ID, err)
	}
	return nil
}
