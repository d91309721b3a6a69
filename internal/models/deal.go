package models

import "time"

// Deal statuses. closed_at is set exactly when status != in_progress.
const (
	DealStatusInProgress = "in_progress"
	DealStatusWon        = "won"
	DealStatusLost       = "lost"
	DealStatusCancelled  = "cancelled"
)

// Deal channel types.
const (
	DealTypeDirect = "direct"
	DealTypeAgency = "agency"
)

// Forecast accuracy tags on open deals.
const (
	ForecastAccuracyHigh   = "high"
	ForecastAccuracyMedium = "medium"
	ForecastAccuracyLow    = "low"
)

type Deal struct {
	ID                 int        `json:"id"`
	Title              string     `json:"title"`
	Value              float64    `json:"value"`
	Status             string     `json:"status"`
	Type               string     `json:"type"`
	UserID             int        `json:"user_id"`
	CompanyID          int        `json:"company_id"`
	AgencyID           *int       `json:"agency_id,omitempty"`
	LeadGeneratedAt    time.Time  `json:"lead_generated_at"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	WinReason          *string    `json:"win_reason,omitempty"`
	LossReason         *string    `json:"loss_reason,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	ForecastAccuracy   *string    `json:"forecast_accuracy,omitempty"`
	LeadSource         *string    `json:"lead_source,omitempty"`
	ProductName        *string    `json:"product_name,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
