package model

import "time"

// InterventionKind is outreach action taken for a customer
type InterventionKind string

const (
	InterventionSupport  InterventionKind = "support"
	InterventionDiscount InterventionKind = "discount"
)

// InterventionKindOf maps requested email type to intervention, anything but support is a discount
func InterventionKindOf(emailType string) InterventionKind {
	if emailType == string(InterventionSupport) {
		return InterventionSupport
	}
	return InterventionDiscount
}

// Description is stored along with status event
func (k InterventionKind) Description() string {
	if k == InterventionSupport {
		return "Send a support email to customer."
	}
	return "Offer a discount of 20% to the user."
}

// StatusEvent is a recorded intervention, customer record itself is never touched by it
type StatusEvent struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	CreatedAt   time.Time `json:"createdAt"`
	Description string    `json:"description"`
}
