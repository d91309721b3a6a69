package models

import "time"

// Activity types.
const (
	ActivityTypePhone   = "phone"
	ActivityTypeEmail   = "email"
	ActivityTypeMeeting = "meeting"
)

type Activity struct {
	ID        int       `json:"id"`
	DealID    int       `json:"deal_id"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
