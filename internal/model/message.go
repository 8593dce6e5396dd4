package model

import "time"

// Message is a buyer inquiry about a listing, addressed to its realtor.
type Message struct {
	ID        int64
	Body      string
	HomeID    int64
	RealtorID int64
	BuyerID   int64
	CreatedAt time.Time
}

// InquireRequest represents an inquiry request body.
type InquireRequest struct {
	Message string `json:"message"`
}

// MessageResponse represents an inquiry in API responses, with enough
// buyer contact info for the realtor to follow up.
type MessageResponse struct {
	ID         int64     `json:"id"`
	Message    string    `json:"message"`
	HomeID     int64     `json:"home_id"`
	BuyerID    int64     `json:"buyer_id"`
	BuyerName  string    `json:"buyer_name"`
	BuyerPhone string    `json:"buyer_phone"`
	BuyerEmail string    `json:"buyer_email"`
	CreatedAt  time.Time `json:"created_at"`
}
