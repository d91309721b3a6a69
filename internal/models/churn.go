package models

// ChurnPayload is the one analytics input that carries caller-supplied data
// instead of reading the deal tables: an ordered list of monthly customer
// counts from the churn form.
type MonthlyChurnInput struct {
	Month            int `json:"month"`
	StartCustomers   int `json:"start_customers"`
	ChurnedCustomers int `json:"churned_customers"`
}

type ChurnPayload struct {
	MonthlyData []MonthlyChurnInput `json:"monthly_data"`
}

type MonthlyChurnDetail struct {
	Month               int     `json:"month"`
	ChurnRatePercent    float64 `json:"churn_rate_percent"`
	SurvivalRatePercent float64 `json:"survival_rate_percent"`
}

type ChurnResult struct {
	AnnualChurnRatePercent    float64              `json:"annual_churn_rate_percent"`
	AnnualSurvivalRatePercent float64              `json:"annual_survival_rate_percent"`
	MonthlyDetails            []MonthlyChurnDetail `json:"monthly_details"`
}
