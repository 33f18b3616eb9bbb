package notification

import (
	"context"

	"gopkg.in/gomail.v2"
)

// MailSender is implemented by *gomail.Dialer
type MailSender interface {
	DialAndSend(...*gomail.Message) error
}

type smtpNotifier struct {
	sender MailSender
	from   string
	to     string
}

func NewSMTPNotifier(sender MailSender, from, to string) Notifier {
	return &smtpNotifier{sender: sender, from: from, to: to}
}

// NewSMTPDialer builds gomail dialer for the mail relay
func NewSMTPDialer(host string, port int, user, password string) *gomail.Dialer {
	return gomail.NewDialer(host, port, user, password)
}

func (n *smtpNotifier) Notify(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	return n.sender.DialAndSend(m)
}
