package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"salescrm/internal/models"
)

type ReportMailer interface {
	SendMonthlyReport(to string, report *models.MonthlyReport) error
}

type reportMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewReportMailer(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) ReportMailer {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &reportMailer{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *reportMailer) SendMonthlyReport(to string, report *models.MonthlyReport) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Monthly sales report %s", report.Label))

	body := fmt.Sprintf(`
		<h2>Sales report for %s</h2>
		<ul>
			<li>Won deals: %d</li>
			<li>Lost deals: %d</li>
			<li>Cancelled deals: %d</li>
			<li>Win rate: %.2f%%</li>
			<li>Cancellation rate: %.2f%%</li>
			<li>Revenue from won deals: %.2f</li>
		</ul>
		<p>Generated automatically by SalesCRM.</p>
	`, report.Label, report.WonCount, report.LostCount, report.CancelledCount,
		report.WinRate, report.CancellationRate, report.Revenue)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send monthly report email: %w", err)
	}

	return nil
}
