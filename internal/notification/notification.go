package notification

import (
	"context"

	"github.com/umalmyha/churn/internal/model"
)

const (
	supportSubject = "Telecom Support Email"
	supportBody    = "Hello, this is a support email from Telecom! It seems you've had some troubles recently " +
		"with our services; we would love to help you. Please let us know what challenges you are facing " +
		"and how we can help support you."

	discountSubject = "Telecom Discount"
	discountBody    = "Hi! Here's a 20% discount voucher for your next month with Telecom: [VOUCHER CODE: 937413]"
)

// Message is plain text email
type Message struct {
	Subject string
	Body    string
}

// Notifier delivers outreach emails
type Notifier interface {
	Notify(context.Context, Message) error
}

// MessageFor returns email sent for intervention kind
func MessageFor(kind model.InterventionKind) Message {
	if kind == model.InterventionSupport {
		return Message{Subject: supportSubject, Body: supportBody}
	}
	return Message{Subject: discountSubject, Body: discountBody}
}
