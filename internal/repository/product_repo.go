package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilter is the closed set of recognized product query options.
// Zero values mean the option is omitted from the predicate entirely;
// the "all" sentinel from the UI never reaches SQL.
type ProductFilter struct {
	CategoryID int
	IsLocked   *bool
	Page       int
	Limit      int
}

// ProductPage contains one page of products plus the exact count of all
// rows matching the filter regardless of the window.
type ProductPage struct {
	Products   []models.Product
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// ListPublic returns unlocked products belonging to active categories,
// newest first, with the category name joined in. The public gallery
// fetches the whole unlocked catalog in one window of up to 100 rows.
func (r *ProductRepository) ListPublic(categoryID, limit int) ([]models.Product, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	const baseWhere = `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.is_locked = false
		AND c.is_active = true
		AND ($1 = 0 OR p.category_id = $1)`

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) `+baseWhere, categoryID); err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := r.db.Select(&products, `
		SELECT p.*, c.name AS category_name `+baseWhere+`
		ORDER BY p.created_at DESC
		LIMIT $2`, categoryID, limit)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListAdmin returns products for the back-office with filters and
// pagination. Locked products are included unless filtered out.
func (r *ProductRepository) ListAdmin(filter *ProductFilter) (*ProductPage, error) {
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

	if filter.CategoryID != 0 {
		baseWhere += fmt.Sprintf(" AND category_id = $%d", argIdx)
		args = append(args, filter.CategoryID)
		argIdx++
	}
	if filter.IsLocked != nil {
		baseWhere += fmt.Sprintf(" AND is_locked = $%d", argIdx)
		args = append(args, *filter.IsLocked)
		argIdx++
	}

	countQuery := `SELECT COUNT(1) FROM products ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	listQuery := fmt.Sprintf(`SELECT * FROM products `+baseWhere+`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	var products []models.Product
	if err := r.db.Select(&products, listQuery, args...); err != nil {
		return nil, err
	}

	return &ProductPage{
		Products:   products,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetByID returns a single product by id with the category name joined.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `
		SELECT p.*, c.name AS category_name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
		LIMIT 1`

	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `
		INSERT INTO products (title, description, short_description, price, category_id, rating, images, is_locked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		product.Title,
		product.Description,
		product.ShortDescription,
		product.Price,
		product.CategoryID,
		product.Rating,
		pq.Array(product.Images),
		product.IsLocked,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `
		UPDATE products
		SET title = $1, description = $2, short_description = $3, price = $4,
		    category_id = $5, rating = $6, images = $7, is_locked = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.db.QueryRowx(q,
		product.Title,
		product.Description,
		product.ShortDescription,
		product.Price,
		product.CategoryID,
		product.Rating,
		pq.Array(product.Images),
		product.IsLocked,
		product.ID,
	).Scan(&product.UpdatedAt)
	if err == sql.ErrNoRows {
		return sql.ErrNoRows
	}
	return err
}

// SetLocked toggles the public visibility flag of a product.
func (r *ProductRepository) SetLocked(id int, locked bool) error {
	const q = `UPDATE products SET is_locked = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.Exec(q, id, locked)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete deletes a product by ID.
func (r *ProductRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByCategory returns how many products reference a category.
func (r *ProductRepository) CountByCategory(categoryID int) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(1) FROM products WHERE category_id = $1`, categoryID)
	return n, err
}
