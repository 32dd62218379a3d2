package domain

import "time"

// Review is a customer rating of a menu item.
type Review struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	MenuID        int64     `json:"menu_id"`
	CreatedAt     time.Time `json:"created_at"`
}
