package services

import (
	"log"
	"time"

	"salescrm/internal/metrics"
	"salescrm/internal/models"
	"salescrm/internal/pdf"
	"salescrm/internal/repositories"
)

// ReportService assembles the year+month report slice and fans it out as
// PDF, email or Telegram digest.
type ReportService struct {
	deals     repositories.DealRepository
	analytics *AnalyticsService
	generator pdf.Generator
	mailer    ReportMailer
	notifier  DigestNotifier
}

func NewReportService(
	deals repositories.DealRepository,
	analytics *AnalyticsService,
	generator pdf.Generator,
	mailer ReportMailer,
	notifier DigestNotifier,
) *ReportService {
	return &ReportService{
		deals:     deals,
		analytics: analytics,
		generator: generator,
		mailer:    mailer,
		notifier:  notifier,
	}
}

// Monthly aggregates the deals closed inside the given UTC calendar month.
// A month outside 1-12 is a client error.
func (s *ReportService) Monthly(year, month int) (*models.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	counts, err := s.deals.MonthlyReportCounts(from, to)
	if err != nil {
		return nil, err
	}

	return &models.MonthlyReport{
		Label:            metrics.MonthBucket(from),
		Year:             year,
		Month:            month,
		TotalClosed:      counts.Closed,
		WonCount:         counts.Won,
		LostCount:        counts.Lost,
		CancelledCount:   counts.Cancelled,
		WinRate:          metrics.Rate(counts.Won, counts.Won+counts.Lost),
		CancellationRate: metrics.Rate(counts.Cancelled, counts.Closed),
		Revenue:          metrics.Round2(counts.Revenue),
	}, nil
}

// MonthlyPDF renders the monthly report and returns the on-disk file path.
func (s *ReportService) MonthlyPDF(year, month int) (string, error) {
	report, err := s.Monthly(year, month)
	if err != nil {
		return "", err
	}
	return s.generator.GenerateMonthlyReport(*report)
}

func (s *ReportService) EmailMonthly(year, month int, to string) error {
	report, err := s.Monthly(year, month)
	if err != nil {
		return err
	}
	log.Printf("[reports][email] label=%s to=%s", report.Label, to)
	return s.mailer.SendMonthlyReport(to, report)
}

// TelegramDigest pushes the current headline KPIs to the configured chat.
func (s *ReportService) TelegramDigest() error {
	kpis, err := s.analytics.Overview()
	if err != nil {
		return err
	}
	return s.notifier.SendKPIDigest(kpis)
}
