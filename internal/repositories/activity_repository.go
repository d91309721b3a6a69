package repositories

import (
	"database/sql"
	"fmt"
)

type ActivityRepository interface {
	CountsByTypeForUser(userID int) (map[string]int, error)
	DealsWithActivityForUser(userID int) (int, error)
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// CountsByTypeForUser counts activities on the user's deals, grouped by type.
func (r *activityRepository) CountsByTypeForUser(userID int) (map[string]int, error) {
	query := `
        SELECT a.type, COUNT(a.id)
        FROM activities a
        JOIN deals d ON a.deal_id = d.id
        WHERE d.user_id = $1
        GROUP BY a.type
    `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("activity counts by type: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var activityType string
		var n int
		if err := rows.Scan(&activityType, &n); err != nil {
			return nil, fmt.Errorf("scan activity count: %w", err)
		}
		counts[activityType] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity counts by type: %w", err)
	}
	return counts, nil
}

// DealsWithActivityForUser counts the user's deals that have at least one
// activity; it is the denominator of activities_per_deal.
func (r *activityRepository) DealsWithActivityForUser(userID int) (int, error) {
	query := `
        SELECT COUNT(DISTINCT a.deal_id)
        FROM activities a
        JOIN deals d ON a.deal_id = d.id
        WHERE d.user_id = $1
    `
	var count int
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("deals with activity: %w", err)
	}
	return count, nil
}
