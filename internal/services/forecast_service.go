package services

import (
	"errors"
	"sort"
	"time"

	"salescrm/internal/metrics"
	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// Client-input errors; handlers map these to 400.
var (
	ErrEmptyChurnPayload = errors.New("monthly_data must not be empty")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
)

// forecastWindowDays restricts the pipeline forecast to recently created
// open deals.
const forecastWindowDays = 180

// Confidence weights per forecast accuracy tag. Untagged deals weigh 0 and
// contribute nothing to the projection.
var forecastWeights = map[string]float64{
	models.ForecastAccuracyHigh:   0.8,
	models.ForecastAccuracyMedium: 0.5,
	models.ForecastAccuracyLow:    0.2,
}

// ForecastService projects pipeline revenue and evaluates churn payloads.
type ForecastService struct {
	deals repositories.DealRepository
}

func NewForecastService(deals repositories.DealRepository) *ForecastService {
	return &ForecastService{deals: deals}
}

// Forecast weights each open deal created in the trailing window before now
// by its accuracy tag and sums the weighted values per creation month.
func (s *ForecastService) Forecast(now time.Time) ([]models.ForecastEntry, error) {
	since := now.AddDate(0, 0, -forecastWindowDays)
	rows, err := s.deals.OpenDealsCreatedSince(since)
	if err != nil {
		return nil, err
	}

	values := map[string][]float64{}
	weights := map[string][]float64{}
	for _, row := range rows {
		weight := 0.0
		if row.ForecastAccuracy != nil {
			weight = forecastWeights[*row.ForecastAccuracy]
		}
		bucket := metrics.MonthBucket(row.CreatedAt)
		values[bucket] = append(values[bucket], row.Value)
		weights[bucket] = append(weights[bucket], weight)
	}

	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	entries := make([]models.ForecastEntry, 0, len(labels))
	for _, label := range labels {
		entries = append(entries, models.ForecastEntry{
			Month:            label,
			ProjectedRevenue: metrics.Round2(metrics.WeightedSum(values[label], weights[label])),
		})
	}
	return entries, nil
}

// Churn evaluates a caller-supplied sequence of monthly customer counts.
// The annual survival rate is the product of the monthly survival rates in
// order, accumulated at full precision; only the percent fields on the
// result are rounded.
func (s *ForecastService) Churn(payload models.ChurnPayload) (*models.ChurnResult, error) {
	if len(payload.MonthlyData) == 0 {
		return nil, ErrEmptyChurnPayload
	}

	annualSurvival := 1.0
	details := make([]models.MonthlyChurnDetail, 0, len(payload.MonthlyData))
	for _, record := range payload.MonthlyData {
		if record.Month < 1 || record.Month > 12 {
			return nil, ErrInvalidMonth
		}
		churn := 0.0
		if record.StartCustomers > 0 {
			churn = float64(record.ChurnedCustomers) / float64(record.StartCustomers)
		}
		survival := 1 - churn
		annualSurvival *= survival
		details = append(details, models.MonthlyChurnDetail{
			Month:               record.Month,
			ChurnRatePercent:    metrics.Round2(churn * 100),
			SurvivalRatePercent: metrics.Round2(survival * 100),
		})
	}

	return &models.ChurnResult{
		AnnualChurnRatePercent:    metrics.Round2((1 - annualSurvival) * 100),
		AnnualSurvivalRatePercent: metrics.Round2(annualSurvival * 100),
		MonthlyDetails:            details,
	}, nil
}
