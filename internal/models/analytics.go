package models

// Result records for the analytics endpoints. Each aggregate query gets its
// own named row type; rows never travel past the service layer untyped.

type OverallKPIs struct {
	TotalDeals      int     `json:"total_deals"`
	TotalValue      float64 `json:"total_value"`
	WinRate         float64 `json:"win_rate"`
	AverageDealSize float64 `json:"average_deal_size"`
}

// MonthlySale is one bucket of the monthly sales chart. Label is "YYYY-MM".
type MonthlySale struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

type DashboardData struct {
	TotalRevenue          float64       `json:"total_revenue"`
	TotalDeals            int           `json:"total_deals"`
	WinRate               float64       `json:"win_rate"`
	AverageDealSize       float64       `json:"average_deal_size"`
	MonthlySalesChartData []MonthlySale `json:"monthly_sales_chart_data"`
}

// ChannelStats covers deals with status won or lost only; cancelled and
// in-progress deals are excluded from this metric.
type ChannelStats struct {
	TotalDeals   int     `json:"total_deals"`
	WonCount     int     `json:"won_count"`
	WinRate      float64 `json:"win_rate"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ChannelPerformance struct {
	Direct ChannelStats `json:"direct"`
	Agency ChannelStats `json:"agency"`
}

type DetailedKPIs struct {
	DirectSales              ChannelStats  `json:"direct_sales"`
	AgencySales              ChannelStats  `json:"agency_sales"`
	AverageTimeToClose       float64       `json:"average_time_to_close"`
	ARPU                     float64       `json:"arpu"`
	AverageCustomerUnitPrice float64       `json:"average_customer_unit_price"`
	MonthlySalesData         []MonthlySale `json:"monthly_sales_data"`
	TotalAnnualSales         float64       `json:"total_annual_sales"`
}

type OutcomeBreakdown struct {
	Status   string `json:"status"`
	Industry string `json:"industry"`
	Reason   string `json:"reason"`
	Count    int    `json:"count"`
}

type IndustryPerformance struct {
	Industry   string  `json:"industry"`
	TotalDeals int     `json:"total_deals"`
	WonDeals   int     `json:"won_deals"`
	WinRate    float64 `json:"win_rate"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type MonthlyCancellationRate struct {
	Label            string  `json:"label"`
	CancelledCount   int     `json:"cancelled_count"`
	TotalClosedCount int     `json:"total_closed_count"`
	CancellationRate float64 `json:"cancellation_rate"`
}

type MonthlyUserPerformance struct {
	Label     string  `json:"label"`
	DealsWon  int     `json:"deals_won"`
	DealsLost int     `json:"deals_lost"`
	WinRate   float64 `json:"win_rate"`
}

type ActivitySummary struct {
	TotalActivities   int            `json:"total_activities"`
	ActivitiesPerDeal float64        `json:"activities_per_deal"`
	ByType            map[string]int `json:"by_type"`
}

type UserPerformance struct {
	UserID             int                      `json:"user_id"`
	UserName           string                   `json:"user_name"`
	DealsWon           int                      `json:"deals_won"`
	WinRate            float64                  `json:"win_rate"`
	TotalRevenue       float64                  `json:"total_revenue"`
	AverageDaysToWin   float64                  `json:"average_days_to_win"`
	MonthlyPerformance []MonthlyUserPerformance `json:"monthly_performance"`
	WinReasons         []ReasonCount            `json:"win_reasons"`
	LossReasons        []ReasonCount            `json:"loss_reasons"`
	ActivitySummary    ActivitySummary          `json:"activity_summary"`
}

// LeaderboardEntry ranks users by revenue from won deals. AverageDealSize
// here is revenue per won deal, unlike the KPI average which divides by the
// full deal count.
type LeaderboardEntry struct {
	UserID          int     `json:"user_id"`
	UserName        string  `json:"user_name"`
	TotalRevenue    float64 `json:"total_revenue"`
	DealsWon        int     `json:"deals_won"`
	AverageDealSize float64 `json:"average_deal_size"`
}

type ForecastEntry struct {
	Month            string  `json:"month"`
	ProjectedRevenue float64 `json:"projected_revenue"`
}

// SearchResult is a tagged union row: Type is "user", "company" or "deal";
// the optional fields are filled per type.
type SearchResult struct {
	Type     string  `json:"type"`
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email,omitempty"`
	Industry string  `json:"industry,omitempty"`
	Status   string  `json:"status,omitempty"`
	Value    float64 `json:"value,omitempty"`
}

type MonthlyReport struct {
	Label            string  `json:"label"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalClosed      int     `json:"total_closed"`
	WonCount         int     `json:"won_count"`
	LostCount        int     `json:"lost_count"`
	CancelledCount   int     `json:"cancelled_count"`
	WinRate          float64 `json:"win_rate"`
	CancellationRate float64 `json:"cancellation_rate"`
	Revenue          float64 `json:"revenue"`
}
