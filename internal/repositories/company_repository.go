package repositories

import (
	"database/sql"
	"fmt"

	"salescrm/internal/models"
)

type CompanyRepository interface {
	Search(q string, limit int) ([]models.Company, error)
}

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Search(q string, limit int) ([]models.Company, error) {
	query := `
        SELECT id, name, COALESCE(industry, ''), created_at, updated_at
        FROM companies
        WHERE name ILIKE '%' || $1 || '%'
        ORDER BY id
        LIMIT $2
    `
	rows, err := r.db.Query(query, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return companies, nil
}
