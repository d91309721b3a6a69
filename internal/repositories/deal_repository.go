package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"salescrm/internal/models"
)

// Row types for the aggregate queries. Counts stay raw here; rate math and
// labeling happen in the services.

type StatusCounts struct {
	InProgress int
	Won        int
	Lost       int
	Cancelled  int
}

func (c StatusCounts) Total() int {
	return c.InProgress + c.Won + c.Lost + c.Cancelled
}

type ChannelCountsRow struct {
	Type     string
	Total    int
	Won      int
	WonValue float64
}

type OutcomeRow struct {
	Status   string
	Industry string
	Reason   string
	Count    int
}

type IndustryCountsRow struct {
	Industry string
	Total    int
	Won      int
}

type MonthlyCloseRow struct {
	Label     string
	Closed    int
	Cancelled int
}

type UserDealRow struct {
	Status          string
	Value           float64
	LeadGeneratedAt time.Time
	CreatedAt       time.Time
	ClosedAt        *time.Time
}

type LeaderboardRow struct {
	UserID   int
	UserName string
	Revenue  float64
	DealsWon int
}

type OpenDealRow struct {
	Value            float64
	ForecastAccuracy *string
	CreatedAt        time.Time
}

type MonthlyReportRow struct {
	Closed    int
	Won       int
	Lost      int
	Cancelled int
	Revenue   float64
}

type DealSearchRow struct {
	ID     int
	Title  string
	Status string
	Value  float64
}

// DealRepository is the read-only query surface the analytics services
// consume. Nothing here mutates deal data.
type DealRepository interface {
	CountByStatus() (StatusCounts, error)
	TotalValue() (float64, error)
	MonthlySales() ([]models.MonthlySale, error)
	ChannelCounts() ([]ChannelCountsRow, error)
	OutcomeCounts() ([]OutcomeRow, error)
	IndustryCounts() ([]IndustryCountsRow, error)
	ReasonCounts(status string, userID int) ([]models.ReasonCount, error)
	MonthlyCloseCounts() ([]MonthlyCloseRow, error)
	AvgSecondsToClose() (float64, error)
	AvgWonValue() (float64, error)
	DistinctOwnerCount() (int, error)
	OpenDealsCreatedSince(since time.Time) ([]OpenDealRow, error)
	ListByUser(userID int) ([]UserDealRow, error)
	LeaderboardRows() ([]LeaderboardRow, error)
	MonthlyReportCounts(from, to time.Time) (MonthlyReportRow, error)
	SearchByTitle(q string, limit int) ([]DealSearchRow, error)
}

type dealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) CountByStatus() (StatusCounts, error) {
	query := `SELECT status, COUNT(*) FROM deals GROUP BY status`
	rows, err := r.db.Query(query)
	if err != nil {
		return StatusCounts{}, fmt.Errorf("count deals by status: %w", err)
	}
	defer rows.Close()

	var counts StatusCounts
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return StatusCounts{}, fmt.Errorf("scan status count: %w", err)
		}
		switch status {
		case models.DealStatusInProgress:
			counts.InProgress = n
		case models.DealStatusWon:
			counts.Won = n
		case models.DealStatusLost:
			counts.Lost = n
		case models.DealStatusCancelled:
			counts.Cancelled = n
		}
	}
	if err := rows.Err(); err != nil {
		return StatusCounts{}, fmt.Errorf("count deals by status: %w", err)
	}
	return counts, nil
}

func (r *dealRepository) TotalValue() (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(value), 0) FROM deals`
	if err := r.db.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("total deal value: %w", err)
	}
	return total, nil
}

// MonthlySales buckets won deals by the UTC month of closed_at.
func (r *dealRepository) MonthlySales() ([]models.MonthlySale, error) {
	query := `
        SELECT to_char(closed_at AT TIME ZONE 'UTC', 'YYYY-MM') AS label,
               SUM(value)
        FROM deals
        WHERE status = 'won' AND closed_at IS NOT NULL
        GROUP BY label
        ORDER BY label
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()

	var sales []models.MonthlySale
	for rows.Next() {
		var s models.MonthlySale
		if err := rows.Scan(&s.Label, &s.Total); err != nil {
			return nil, fmt.Errorf("scan monthly sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	return sales, nil
}

// ChannelCounts covers won+lost deals only; this breakdown uses the strict
// definition of "closed" and leaves cancelled deals out.
func (r *dealRepository) ChannelCounts() ([]ChannelCountsRow, error) {
	query := `
        SELECT type,
               COUNT(*) AS total,
               COUNT(*) FILTER (WHERE status = 'won') AS won,
               COALESCE(SUM(value) FILTER (WHERE status = 'won'), 0) AS won_value
        FROM deals
        WHERE status IN ('won', 'lost')
        GROUP BY type
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("channel counts: %w", err)
	}
	defer rows.Close()

	var result []ChannelCountsRow
	for rows.Next() {
		var row ChannelCountsRow
		if err := rows.Scan(&row.Type, &row.Total, &row.Won, &row.WonValue); err != nil {
			return nil, fmt.Errorf("scan channel counts: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("channel counts: %w", err)
	}
	return result, nil
}

// OutcomeCounts groups closed deals by (status, company industry, reason).
// The reason column is picked per status; NULL industry/reason come back as
// empty strings and get labeled in the service.
func (r *dealRepository) OutcomeCounts() ([]OutcomeRow, error) {
	query := `
        SELECT d.status,
               COALESCE(c.industry, '') AS industry,
               COALESCE(CASE d.status
                   WHEN 'won' THEN d.win_reason
                   WHEN 'lost' THEN d.loss_reason
                   WHEN 'cancelled' THEN d.cancellation_reason
               END, '') AS reason,
               COUNT(d.id)
        FROM deals d
        JOIN companies c ON d.company_id = c.id
        WHERE d.status IN ('won', 'lost', 'cancelled')
        GROUP BY d.status, industry, reason
        ORDER BY d.status, industry
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("outcome counts: %w", err)
	}
	defer rows.Close()

	var result []OutcomeRow
	for rows.Next() {
		var row OutcomeRow
		if err := rows.Scan(&row.Status, &row.Industry, &row.Reason, &row.Count); err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("outcome counts: %w", err)
	}
	return result, nil
}

func (r *dealRepository) IndustryCounts() ([]IndustryCountsRow, error) {
	query := `
        SELECT COALESCE(c.industry, '') AS industry,
               COUNT(d.id) AS total,
               COUNT(d.id) FILTER (WHERE d.status = 'won') AS won
        FROM deals d
        JOIN companies c ON d.company_id = c.id
        GROUP BY industry
        ORDER BY total DESC
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("industry counts: %w", err)
	}
	defer rows.Close()

	var result []IndustryCountsRow
	for rows.Next() {
		var row IndustryCountsRow
		if err := rows.Scan(&row.Industry, &row.Total, &row.Won); err != nil {
			return nil, fmt.Errorf("scan industry row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("industry counts: %w", err)
	}
	return result, nil
}

// ReasonCounts ranks win or loss reasons by occurrence, dropping NULLs.
// status must be 'won' or 'lost'; userID 0 means all users.
func (r *dealRepository) ReasonCounts(status string, userID int) ([]models.ReasonCount, error) {
	column := "win_reason"
	if status == models.DealStatusLost {
		column = "loss_reason"
	}

	query := fmt.Sprintf(`
        SELECT %s, COUNT(*) AS cnt
        FROM deals
        WHERE status = $1 AND %s IS NOT NULL
    `, column, column)
	args := []interface{}{status}
	if userID > 0 {
		query += " AND user_id = $2"
		args = append(args, userID)
	}
	query += fmt.Sprintf(" GROUP BY %s ORDER BY cnt DESC", column)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("reason counts: %w", err)
	}
	defer rows.Close()

	var result []models.ReasonCount
	for rows.Next() {
		var rc models.ReasonCount
		if err := rows.Scan(&rc.Reason, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan reason count: %w", err)
		}
		result = append(result, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reason counts: %w", err)
	}
	return result, nil
}

// MonthlyCloseCounts feeds the cancellation-rate series: won, lost and
// cancelled deals with a closed_at, bucketed by month.
func (r *dealRepository) MonthlyCloseCounts() ([]MonthlyCloseRow, error) {
	query := `
        SELECT to_char(closed_at AT TIME ZONE 'UTC', 'YYYY-MM') AS label,
               COUNT(*) AS closed,
               COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled
        FROM deals
        WHERE status IN ('won', 'lost', 'cancelled') AND closed_at IS NOT NULL
        GROUP BY label
        ORDER BY label
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("monthly close counts: %w", err)
	}
	defer rows.Close()

	var result []MonthlyCloseRow
	for rows.Next() {
		var row MonthlyCloseRow
		if err := rows.Scan(&row.Label, &row.Closed, &row.Cancelled); err != nil {
			return nil, fmt.Errorf("scan monthly close row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("monthly close counts: %w", err)
	}
	return result, nil
}

// AvgSecondsToClose averages closed_at - lead_generated_at over won deals.
// Returns 0 when there are no won deals.
func (r *dealRepository) AvgSecondsToClose() (float64, error) {
	query := `
        SELECT AVG(EXTRACT(EPOCH FROM (closed_at - lead_generated_at)))
        FROM deals
        WHERE status = 'won' AND closed_at IS NOT NULL
    `
	var avg sql.NullFloat64
	if err := r.db.QueryRow(query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("avg seconds to close: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

func (r *dealRepository) AvgWonValue() (float64, error) {
	var avg float64
	query := `SELECT COALESCE(AVG(value), 0) FROM deals WHERE status = 'won'`
	if err := r.db.QueryRow(query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("avg won value: %w", err)
	}
	return avg, nil
}

func (r *dealRepository) DistinctOwnerCount() (int, error) {
	var count int
	query := `SELECT COUNT(DISTINCT user_id) FROM deals`
	if err := r.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("distinct owner count: %w", err)
	}
	return count, nil
}

// OpenDealsCreatedSince returns the in-progress pipeline for the forecast:
// value, accuracy tag and creation time of open deals created after since.
func (r *dealRepository) OpenDealsCreatedSince(since time.Time) ([]OpenDealRow, error) {
	query := `
        SELECT value, forecast_accuracy, created_at
        FROM deals
        WHERE status = 'in_progress' AND created_at >= $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(query, since)
	if err != nil {
		return nil, fmt.Errorf("open deals since: %w", err)
	}
	defer rows.Close()

	var result []OpenDealRow
	for rows.Next() {
		var row OpenDealRow
		var accuracy sql.NullString
		if err := rows.Scan(&row.Value, &accuracy, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan open deal: %w", err)
		}
		if accuracy.Valid {
			row.ForecastAccuracy = &accuracy.String
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("open deals since: %w", err)
	}
	return result, nil
}

func (r *dealRepository) ListByUser(userID int) ([]UserDealRow, error) {
	query := `
        SELECT status, value, lead_generated_at, created_at, closed_at
        FROM deals
        WHERE user_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("deals by user: %w", err)
	}
	defer rows.Close()

	var result []UserDealRow
	for rows.Next() {
		var row UserDealRow
		var closedAt sql.NullTime
		if err := rows.Scan(&row.Status, &row.Value, &row.LeadGeneratedAt, &row.CreatedAt, &closedAt); err != nil {
			return nil, fmt.Errorf("scan user deal: %w", err)
		}
		if closedAt.Valid {
			t := closedAt.Time
			row.ClosedAt = &t
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("deals by user: %w", err)
	}
	return result, nil
}

// LeaderboardRows aggregates won revenue and won count per user, every user
// included, highest revenue first.
func (r *dealRepository) LeaderboardRows() ([]LeaderboardRow, error) {
	query := `
        SELECT u.id, u.name,
               COALESCE(SUM(d.value) FILTER (WHERE d.status = 'won'), 0) AS revenue,
               COUNT(d.id) FILTER (WHERE d.status = 'won') AS deals_won
        FROM users u
        LEFT JOIN deals d ON d.user_id = u.id
        GROUP BY u.id, u.name
        ORDER BY revenue DESC, u.id
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("leaderboard rows: %w", err)
	}
	defer rows.Close()

	var result []LeaderboardRow
	for rows.Next() {
		var row LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.UserName, &row.Revenue, &row.DealsWon); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard rows: %w", err)
	}
	return result, nil
}

// MonthlyReportCounts aggregates closed deals in [from, to).
func (r *dealRepository) MonthlyReportCounts(from, to time.Time) (MonthlyReportRow, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'won'),
               COUNT(*) FILTER (WHERE status = 'lost'),
               COUNT(*) FILTER (WHERE status = 'cancelled'),
               COALESCE(SUM(value) FILTER (WHERE status = 'won'), 0)
        FROM deals
        WHERE status IN ('won', 'lost', 'cancelled')
          AND closed_at >= $1 AND closed_at < $2
    `
	var row MonthlyReportRow
	err := r.db.QueryRow(query, from, to).Scan(
		&row.Closed,
		&row.Won,
		&row.Lost,
		&row.Cancelled,
		&row.Revenue,
	)
	if err != nil {
		return MonthlyReportRow{}, fmt.Errorf("monthly report counts: %w", err)
	}
	return row, nil
}

func (r *dealRepository) SearchByTitle(q string, limit int) ([]DealSearchRow, error) {
	query := `
        SELECT id, title, status, value
        FROM deals
        WHERE title ILIKE '%' || $1 || '%'
        ORDER BY id
        LIMIT $2
    `
	rows, err := r.db.Query(query, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search deals: %w", err)
	}
	defer rows.Close()

	var result []DealSearchRow
	for rows.Next() {
		var row DealSearchRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Status, &row.Value); err != nil {
			return nil, fmt.Errorf("scan deal search row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search deals: %w", err)
	}
	return result, nil
}
