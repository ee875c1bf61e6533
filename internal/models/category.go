package models

import "time"

// Category groups products. Inactive categories are hidden from public
// listings but remain visible and editable in the back-office.
type Category struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// Number of products referencing this category; populated on admin
	// list reads so the UI can warn before a delete attempt.
	ProductCount int `db:"product_count" json:"productCount"`
}
