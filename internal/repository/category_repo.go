package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CategoryFilter is the closed set of recognized category query options.
type CategoryFilter struct {
	IsActive *bool
	Page     int
	Limit    int
}

// CategoryPage contains one page of categories plus the exact total.
type CategoryPage struct {
	Categories []models.Category
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// ListActive returns active categories ordered by name, for the
// storefront navigation and gallery filter.
func (r *CategoryRepository) ListActive() ([]models.Category, error) {
	const q = `
		SELECT c.*, 0 AS product_count
		FROM categories c
		WHERE c.is_active = true
		ORDER BY c.name`

	var categories []models.Category
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListAdmin returns all categories (including inactive) with the number
// of products referencing each, filtered and paginated.
func (r *CategoryRepository) ListAdmin(filter *CategoryFilter) (*CategoryPage, error) {
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

	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND c.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := `SELECT COUNT(1) FROM categories c ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	listQuery := fmt.Sprintf(`
		SELECT c.*, COALESCE(pc.n, 0) AS product_count
		FROM categories c
		LEFT JOIN (
			SELECT category_id, COUNT(1) AS n FROM products GROUP BY category_id
		) pc ON pc.category_id = c.id
		`+baseWhere+`
		ORDER BY c.name
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	var categories []models.Category
	if err := r.db.Select(&categories, listQuery, args...); err != nil {
		return nil, err
	}

	return &CategoryPage{
		Categories: categories,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(id int) (*models.Category, error) {
	const q = `SELECT c.*, 0 AS product_count FROM categories c WHERE c.id = $1 LIMIT 1`

	var cat models.Category
	if err := r.db.Get(&cat, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &cat, nil
}

// Create inserts a new category.
func (r *CategoryRepository) Create(category *models.Category) error {
	const q = `
		INSERT INTO categories (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q, category.Name, category.Description, category.IsActive).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

// Update updates an existing category.
func (r *CategoryRepository) Update(category *models.Category) error {
	const q = `
		UPDATE categories
		SET name = $1, description = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.db.QueryRowx(q, category.Name, category.Description, category.IsActive, category.ID).
		Scan(&category.UpdatedAt)
	if err == sql.ErrNoRows {
		return sql.ErrNoRows
	}
	return err
}

// Delete deletes a category by ID. The products.category_id foreign key
// is ON DELETE RESTRICT, so the database rejects the delete while any
// product still references the category.
func (r *CategoryRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrForeignKeyViolation
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
