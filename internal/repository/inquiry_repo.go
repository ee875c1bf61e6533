package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// InquiryRepository handles data access for contact inquiries.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates a new InquiryRepository.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// InquiryFilter is the closed set of recognized inquiry query options.
type InquiryFilter struct {
	Status models.InquiryStatus
	Page   int
	Limit  int
}

// InquiryPage contains one page of inquiries plus the exact total.
type InquiryPage struct {
	Inquiries  []models.Inquiry
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// List returns inquiries newest first with optional status filter,
// paginated.
func (r *InquiryRepository) List(filter *InquiryFilter) (*InquiryPage, error) {
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

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(1) FROM inquiries ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	listQuery := fmt.Sprintf(`SELECT * FROM inquiries `+baseWhere+`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	var inquiries []models.Inquiry
	if err := r.db.Select(&inquiries, listQuery, args...); err != nil {
		return nil, err
	}

	return &InquiryPage{
		Inquiries:  inquiries,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetByID returns a single inquiry by id.
func (r *InquiryRepository) GetByID(id int) (*models.Inquiry, error) {
	var inq models.Inquiry
	if err := r.db.Get(&inq, `SELECT * FROM inquiries WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &inq, nil
}

// Create inserts a new inquiry. Status and reference_id are assigned by
// the caller before insert.
func (r *InquiryRepository) Create(inquiry *models.Inquiry) error {
	const q = `
		INSERT INTO inquiries (first_name, last_name, email, phone, subject, message, subscribe_newsletter, reference_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		inquiry.FirstName,
		inquiry.LastName,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Subject,
		inquiry.Message,
		inquiry.SubscribeNewsletter,
		inquiry.ReferenceID,
		inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)
}

// UpdateStatus sets the workflow status of an inquiry.
func (r *InquiryRepository) UpdateStatus(id int, status models.InquiryStatus) error {
	const q = `UPDATE inquiries SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.Exec(q, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete deletes an inquiry by ID.
func (r *InquiryRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
