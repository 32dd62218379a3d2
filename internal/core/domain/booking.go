package domain

import "time"

// Booking is a table reservation submitted by a customer.
type Booking struct {
	ID              int64     `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	BookingDate     string    `json:"booking_date"` // YYYY-MM-DD
	BookingTime     string    `json:"booking_time"`
	PartySize       int       `json:"party_size"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
