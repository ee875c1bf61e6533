package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// UserRepository handles data access for accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UserFilter is the closed set of recognized account query options.
type UserFilter struct {
	Role  models.UserRole
	Page  int
	Limit int
}

// UserPage contains one page of users plus the exact total.
type UserPage struct {
	Users      []models.User
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// List returns users newest first with optional role filter, paginated.
func (r *UserRepository) List(filter *UserFilter) (*UserPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	baseWhere := `WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND role = $%d", argIdx)
		args = append(args, filter.Role)
		argIdx++
	}

	countQuery := `SELECT COUNT(1) FROM users ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	listQuery := fmt.Sprintf(`SELECT * FROM users `+baseWhere+`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	var users []models.User
	if err := r.db.Select(&users, listQuery, args...); err != nil {
		return nil, err
	}

	return &UserPage{
		Users:      users,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetByID returns a single user by id.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, `SELECT * FROM users WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns a single user by email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, `SELECT * FROM users WHERE email = $1 LIMIT 1`, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// UpdateRole sets the role of a user, leaving every other column untouched.
func (r *UserRepository) UpdateRole(id int, role models.UserRole) error {
	const q = `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.Exec(q, id, role)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
