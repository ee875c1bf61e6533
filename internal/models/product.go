package models

import (
	"time"

	"github.com/lib/pq"
)

// MaxProductImages caps the ordered image list per product.
const MaxProductImages = 5

// Price and rating bounds enforced before any write.
const (
	MaxProductPrice  = 100000
	MaxProductRating = 5
)

// Product represents a catalog item. A locked product stays editable in
// the back-office but is excluded from every public listing.
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID               int            `db:"id" json:"id"`
	Title            string         `db:"title" json:"title"`
	Description      string         `db:"description" json:"description"`
	ShortDescription string         `db:"short_description" json:"shortDescription"`
	Price            float64        `db:"price" json:"price"`
	CategoryID       int            `db:"category_id" json:"categoryId"`
	Rating           float64        `db:"rating" json:"rating"`
	Images           pq.StringArray `db:"images" json:"images"`
	IsLocked         bool           `db:"is_locked" json:"isLocked"`
	CreatedAt        time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updatedAt"`

	// Populated via join on public reads; empty on admin paths that
	// fetch the bare row.
	CategoryName string `db:"category_name" json:"categoryName,omitempty"`
}
