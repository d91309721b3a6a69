package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

type fakeGenerator struct {
	got  *models.MonthlyReport
	path string
	err  error
}

func (f *fakeGenerator) GenerateMonthlyReport(report models.MonthlyReport) (string, error) {
	f.got = &report
	return f.path, f.err
}

type fakeMailer struct {
	to     string
	report *models.MonthlyReport
	err    error
}

func (f *fakeMailer) SendMonthlyReport(to string, report *models.MonthlyReport) error {
	f.to = to
	f.report = report
	return f.err
}

type fakeNotifier struct {
	kpis *models.OverallKPIs
	err  error
}

func (f *fakeNotifier) SendKPIDigest(kpis *models.OverallKPIs) error {
	f.kpis = kpis
	return f.err
}

func newReportFixture(deals *fakeDealRepo) (*fakeGenerator, *fakeMailer, *fakeNotifier, *ReportService) {
	generator := &fakeGenerator{path: "/var/reports/monthly_report_2023-07.pdf"}
	mailer := &fakeMailer{}
	notifier := &fakeNotifier{}
	svc := NewReportService(deals, NewAnalyticsService(deals), generator, mailer, notifier)
	return generator, mailer, notifier, svc
}

func TestMonthlyReport(t *testing.T) {
	deals := &fakeDealRepo{
		reportCounts: repositories.MonthlyReportRow{Closed: 4, Won: 2, Lost: 1, Cancelled: 1, Revenue: 300},
	}
	_, _, _, svc := newReportFixture(deals)

	report, err := svc.Monthly(2023, 7)
	require.NoError(t, err)

	assert.Equal(t, "2023-07", report.Label)
	assert.Equal(t, 4, report.TotalClosed)
	assert.Equal(t, 66.67, report.WinRate)
	assert.Equal(t, 25.0, report.CancellationRate)
	assert.Equal(t, 300.0, report.Revenue)
}

func TestMonthlyReportInvalidMonth(t *testing.T) {
	_, _, _, svc := newReportFixture(&fakeDealRepo{})

	for _, month := range []int{0, 13, -1} {
		_, err := svc.Monthly(2023, month)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestMonthlyPDF(t *testing.T) {
	generator, _, _, svc := newReportFixture(&fakeDealRepo{
		reportCounts: repositories.MonthlyReportRow{Closed: 1, Won: 1, Revenue: 100},
	})

	path, err := svc.MonthlyPDF(2023, 7)
	require.NoError(t, err)

	assert.Equal(t, "/var/reports/monthly_report_2023-07.pdf", path)
	require.NotNil(t, generator.got)
	assert.Equal(t, "2023-07", generator.got.Label)
}

func TestEmailMonthly(t *testing.T) {
	_, mailer, _, svc := newReportFixture(&fakeDealRepo{})

	require.NoError(t, svc.EmailMonthly(2023, 7, "boss@example.com"))
	assert.Equal(t, "boss@example.com", mailer.to)
	require.NotNil(t, mailer.report)
	assert.Equal(t, "2023-07", mailer.report.Label)
}

func TestTelegramDigest(t *testing.T) {
	deals := &fakeDealRepo{
		statusCounts: repositories.StatusCounts{Won: 1, Lost: 1},
		totalValue:   150,
	}
	_, _, notifier, svc := newReportFixture(deals)

	require.NoError(t, svc.TelegramDigest())
	require.NotNil(t, notifier.kpis)
	assert.Equal(t, 2, notifier.kpis.TotalDeals)
	assert.Equal(t, 50.0, notifier.kpis.WinRate)
}

func TestReportStorageErrorPropagates(t *testing.T) {
	boom := errors.New("db gone")
	_, _, _, svc := newReportFixture(&fakeDealRepo{err: boom})

	_, err := svc.Monthly(2023, 7)
	assert.ErrorIs(t, err, boom)
}
