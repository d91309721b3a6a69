package services

import (
	"salescrm/internal/metrics"
	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// Labels substituted for missing dimensions in breakdown rows.
const (
	industryUnknown = "Unknown"
	reasonNotGiven  = "No Reason Given"
)

// BreakdownService produces the grouped-count reports. Each breakdown keeps
// its own definition of "closed": the channel breakdown counts won+lost only,
// the cancellation series counts won+lost+cancelled.
type BreakdownService struct {
	deals repositories.DealRepository
}

func NewBreakdownService(deals repositories.DealRepository) *BreakdownService {
	return &BreakdownService{deals: deals}
}

// DealOutcomes groups won/lost/cancelled deals by (status, industry, reason),
// where reason is the status-specific reason column. In-progress deals carry
// no reason and are excluded entirely.
func (s *BreakdownService) DealOutcomes() ([]models.OutcomeBreakdown, error) {
	rows, err := s.deals.OutcomeCounts()
	if err != nil {
		return nil, err
	}

	result := make([]models.OutcomeBreakdown, 0, len(rows))
	for _, row := range rows {
		industry := row.Industry
		if industry == "" {
			industry = industryUnknown
		}
		reason := row.Reason
		if reason == "" {
			reason = reasonNotGiven
		}
		result = append(result, models.OutcomeBreakdown{
			Status:   row.Status,
			Industry: industry,
			Reason:   reason,
			Count:    row.Count,
		})
	}
	return result, nil
}

func (s *BreakdownService) ChannelPerformance() (*models.ChannelPerformance, error) {
	rows, err := s.deals.ChannelCounts()
	if err != nil {
		return nil, err
	}
	performance := buildChannelPerformance(rows)
	return &performance, nil
}

// IndustryPerformance reports win rates per company industry, largest deal
// count first (the repository orders by total).
func (s *BreakdownService) IndustryPerformance() ([]models.IndustryPerformance, error) {
	rows, err := s.deals.IndustryCounts()
	if err != nil {
		return nil, err
	}

	result := make([]models.IndustryPerformance, 0, len(rows))
	for _, row := range rows {
		industry := row.Industry
		if industry == "" {
			industry = industryUnknown
		}
		result = append(result, models.IndustryPerformance{
			Industry:   industry,
			TotalDeals: row.Total,
			WonDeals:   row.Won,
			WinRate:    metrics.Rate(row.Won, row.Total),
		})
	}
	return result, nil
}

func (s *BreakdownService) WinReasons() ([]models.ReasonCount, error) {
	return s.reasons(models.DealStatusWon)
}

func (s *BreakdownService) LossReasons() ([]models.ReasonCount, error) {
	return s.reasons(models.DealStatusLost)
}

func (s *BreakdownService) reasons(status string) ([]models.ReasonCount, error) {
	rows, err := s.deals.ReasonCounts(status, 0)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.ReasonCount{}
	}
	return rows, nil
}

// MonthlySales sums won deal values per close month, ascending by label.
func (s *BreakdownService) MonthlySales() ([]models.MonthlySale, error) {
	sales, err := s.deals.MonthlySales()
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []models.MonthlySale{}
	}
	for i := range sales {
		sales[i].Total = metrics.Round2(sales[i].Total)
	}
	return sales, nil
}

func (s *BreakdownService) MonthlyCancellationRate() ([]models.MonthlyCancellationRate, error) {
	rows, err := s.deals.MonthlyCloseCounts()
	if err != nil {
		return nil, err
	}

	result := make([]models.MonthlyCancellationRate, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.MonthlyCancellationRate{
			Label:            row.Label,
			CancelledCount:   row.Cancelled,
			TotalClosedCount: row.Closed,
			CancellationRate: metrics.Rate(row.Cancelled, row.Closed),
		})
	}
	return result, nil
}

// buildChannelPerformance maps channel count rows onto the two-channel
// record. Channels with no closed deals keep zero values.
func buildChannelPerformance(rows []repositories.ChannelCountsRow) models.ChannelPerformance {
	var performance models.ChannelPerformance
	for _, row := range rows {
		stats := models.ChannelStats{
			TotalDeals:   row.Total,
			WonCount:     row.Won,
			WinRate:      metrics.Rate(row.Won, row.Total),
			TotalRevenue: metrics.Round2(row.WonValue),
		}
		switch row.Type {
		case models.DealTypeDirect:
			performance.Direct = stats
		case models.DealTypeAgency:
			performance.Agency = stats
		}
	}
	return performance
}
