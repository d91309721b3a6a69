package services

import (
	"salescrm/internal/metrics"
	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// AnalyticsService computes the scalar dashboard KPIs. Pure read-then-compute:
// every call re-derives its numbers from the current deal set.
//
// average_deal_size divides total value by the full deal count (not by won
// deals); the same policy is used on every endpoint that reports it.
type AnalyticsService struct {
	deals repositories.DealRepository
}

func NewAnalyticsService(deals repositories.DealRepository) *AnalyticsService {
	return &AnalyticsService{deals: deals}
}

// Overview returns the four headline KPIs. In-progress and cancelled deals
// stay out of the win-rate denominator.
func (s *AnalyticsService) Overview() (*models.OverallKPIs, error) {
	counts, err := s.deals.CountByStatus()
	if err != nil {
		return nil, err
	}
	totalValue, err := s.deals.TotalValue()
	if err != nil {
		return nil, err
	}

	return &models.OverallKPIs{
		TotalDeals:      counts.Total(),
		TotalValue:      metrics.Round2(totalValue),
		WinRate:         metrics.Rate(counts.Won, counts.Won+counts.Lost),
		AverageDealSize: metrics.Round2(metrics.SafeDiv(totalValue, float64(counts.Total()))),
	}, nil
}

// Dashboard combines the headline KPIs with the monthly sales chart series.
func (s *AnalyticsService) Dashboard() (*models.DashboardData, error) {
	kpis, err := s.Overview()
	if err != nil {
		return nil, err
	}
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

	return &models.DashboardData{
		TotalRevenue:          kpis.TotalValue,
		TotalDeals:            kpis.TotalDeals,
		WinRate:               kpis.WinRate,
		AverageDealSize:       kpis.AverageDealSize,
		MonthlySalesChartData: sales,
	}, nil
}

// Detailed returns the advanced dashboard: per-channel conclusion rates,
// average time to close, ARPU, average won deal value and the annual sales
// series with its total.
func (s *AnalyticsService) Detailed() (*models.DetailedKPIs, error) {
	channelRows, err := s.deals.ChannelCounts()
	if err != nil {
		return nil, err
	}
	channels := buildChannelPerformance(channelRows)

	avgSeconds, err := s.deals.AvgSecondsToClose()
	if err != nil {
		return nil, err
	}
	avgWonValue, err := s.deals.AvgWonValue()
	if err != nil {
		return nil, err
	}
	totalValue, err := s.deals.TotalValue()
	if err != nil {
		return nil, err
	}
	owners, err := s.deals.DistinctOwnerCount()
	if err != nil {
		return nil, err
	}
	sales, err := s.deals.MonthlySales()
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []models.MonthlySale{}
	}

	var annualTotal float64
	for i := range sales {
		annualTotal += sales[i].Total
		sales[i].Total = metrics.Round2(sales[i].Total)
	}

	return &models.DetailedKPIs{
		DirectSales:              channels.Direct,
		AgencySales:              channels.Agency,
		AverageTimeToClose:       metrics.Round2(avgSeconds / (60 * 60 * 24)),
		ARPU:                     metrics.Round2(metrics.SafeDiv(totalValue, float64(owners))),
		AverageCustomerUnitPrice: metrics.Round2(avgWonValue),
		MonthlySalesData:         sales,
		TotalAnnualSales:         metrics.Round2(annualTotal),
	}, nil
}
