package domain

import "time"

// Customer is a shop customer as shown in the dashboard.
type Customer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	// OrderCount is reported by the backend for the list view.
	OrderCount int `json:"orderCount"`
}

// ChatMessage is one message in a customer support thread. ClientMessageID
// is generated gateway-side so a retried send can be deduplicated upstream.
type ChatMessage struct {
	ID              string    `json:"id"`
	ClientMessageID string    `json:"clientMessageId"`
	CustomerID      string    `json:"customerId"`
	// FromStaff is true for messages sent from the dashboard.
	FromStaff bool      `json:"fromStaff"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sentAt"`
}
