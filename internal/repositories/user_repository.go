package repositories

import (
	"database/sql"
	"fmt"

	"salescrm/internal/models"
)

type UserRepository interface {
	GetByID(id int) (*models.User, error)
	Search(q string, limit int) ([]models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	query := `
        SELECT id, name, email, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// Search matches name or email, case-insensitive contains.
func (r *userRepository) Search(q string, limit int) ([]models.User, error) {
	query := `
        SELECT id, name, email, created_at, updated_at
        FROM users
        WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
        ORDER BY id
        LIMIT $2
    `
	rows, err := r.db.Query(query, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
