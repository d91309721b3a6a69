package models

import "time"

// Company is a counterparty. Industry is free text and may be empty;
// breakdowns report empty industries as "Unknown".
type Company struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
