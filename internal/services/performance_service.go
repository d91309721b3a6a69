package services

import (
	"sort"

	"salescrm/internal/metrics"
	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// PerformanceService computes per-salesperson metrics and the leaderboard.
type PerformanceService struct {
	users      repositories.UserRepository
	deals      repositories.DealRepository
	activities repositories.ActivityRepository
}

func NewPerformanceService(
	users repositories.UserRepository,
	deals repositories.DealRepository,
	activities repositories.ActivityRepository,
) *PerformanceService {
	return &PerformanceService{users: users, deals: deals, activities: activities}
}

// UserPerformance returns nil, nil when the user does not exist; the handler
// maps that to 404. A user with zero deals gets a zero-valued record, not an
// error.
func (s *PerformanceService) UserPerformance(userID int) (*models.UserPerformance, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	dealRows, err := s.deals.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	perf := &models.UserPerformance{
		UserID:             user.ID,
		UserName:           user.Name,
		MonthlyPerformance: []models.MonthlyUserPerformance{},
		WinReasons:         []models.ReasonCount{},
		LossReasons:        []models.ReasonCount{},
	}

	var won, lost, daysSamples int
	var revenue, daysTotal float64
	monthlyWon := map[string]int{}
	monthlyLost := map[string]int{}
	for _, d := range dealRows {
		switch d.Status {
		case models.DealStatusWon:
			won++
			revenue += d.Value
			if d.ClosedAt != nil {
				start := d.LeadGeneratedAt
				if start.IsZero() {
					start = d.CreatedAt
				}
				daysTotal += metrics.DaysBetween(start, *d.ClosedAt)
				daysSamples++
				monthlyWon[metrics.MonthBucket(*d.ClosedAt)]++
			}
		case models.DealStatusLost:
			lost++
			if d.ClosedAt != nil {
				monthlyLost[metrics.MonthBucket(*d.ClosedAt)]++
			}
		}
	}

	perf.DealsWon = won
	perf.WinRate = metrics.Rate(won, won+lost)
	perf.TotalRevenue = metrics.Round2(revenue)
	perf.AverageDaysToWin = metrics.Round2(metrics.SafeDiv(daysTotal, float64(daysSamples)))
	perf.MonthlyPerformance = monthlyTrend(monthlyWon, monthlyLost)

	winReasons, err := s.deals.ReasonCounts(models.DealStatusWon, userID)
	if err != nil {
		return nil, err
	}
	if winReasons != nil {
		perf.WinReasons = winReasons
	}
	lossReasons, err := s.deals.ReasonCounts(models.DealStatusLost, userID)
	if err != nil {
		return nil, err
	}
	if lossReasons != nil {
		perf.LossReasons = lossReasons
	}

	summary, err := s.activitySummary(userID)
	if err != nil {
		return nil, err
	}
	perf.ActivitySummary = summary

	return perf, nil
}

func (s *PerformanceService) activitySummary(userID int) (models.ActivitySummary, error) {
	byType, err := s.activities.CountsByTypeForUser(userID)
	if err != nil {
		return models.ActivitySummary{}, err
	}
	dealsWithActivity, err := s.activities.DealsWithActivityForUser(userID)
	if err != nil {
		return models.ActivitySummary{}, err
	}

	total := 0
	for _, n := range byType {
		total += n
	}
	if byType == nil {
		byType = map[string]int{}
	}
	return models.ActivitySummary{
		TotalActivities:   total,
		ActivitiesPerDeal: metrics.Round2(metrics.SafeDiv(float64(total), float64(dealsWithActivity))),
		ByType:            byType,
	}, nil
}

// monthlyTrend merges the won/lost month buckets into a chronological series.
func monthlyTrend(won, lost map[string]int) []models.MonthlyUserPerformance {
	labels := map[string]bool{}
	for label := range won {
		labels[label] = true
	}
	for label := range lost {
		labels[label] = true
	}

	ordered := make([]string, 0, len(labels))
	for label := range labels {
		ordered = append(ordered, label)
	}
	sort.Strings(ordered)

	trend := make([]models.MonthlyUserPerformance, 0, len(ordered))
	for _, label := range ordered {
		w, l := won[label], lost[label]
		trend = append(trend, models.MonthlyUserPerformance{
			Label:     label,
			DealsWon:  w,
			DealsLost: l,
			WinRate:   metrics.Rate(w, w+l),
		})
	}
	return trend
}

// Leaderboard ranks every user by revenue from won deals, descending.
func (s *PerformanceService) Leaderboard() ([]models.LeaderboardEntry, error) {
	rows, err := s.deals.LeaderboardRows()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.LeaderboardEntry{
			UserID:          row.UserID,
			UserName:        row.UserName,
			TotalRevenue:    metrics.Round2(row.Revenue),
			DealsWon:        row.DealsWon,
			AverageDealSize: metrics.Round2(metrics.SafeDiv(row.Revenue, float64(row.DealsWon))),
		})
	}
	return entries, nil
}
