package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// SortKey selects the gallery ordering.
type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
)

// ValidSortKey reports whether k is a recognized sort key.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortPriceLow, SortPriceHigh, SortRating, SortName, SortNewest:
		return true
	}
	return false
}

// SortProducts returns a stably sorted copy of items under the given
// key. Ties keep the input sequence's relative order. Unrecognized keys
// fall back to newest-first, the gallery default.
func SortProducts(items []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(items))
	copy(out, items)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortName:
		// Locale-aware title collation rather than raw byte order.
		col := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Title, out[j].Title) < 0
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
