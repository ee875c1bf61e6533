package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magnetmantra/magnet_api/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Retro Car Magnet", Description: "A vintage looking fridge magnet"},
		{ID: 2, Title: "Photo Magnet Set", Description: "Turn your photos into magnets"},
		{ID: 3, Title: "Wedding Save the Date", Description: "Announce the big day"},
	}
}

func TestFilterProductsMatchesTitleAndDescription(t *testing.T) {
	items := sampleProducts()

	byTitle := FilterProducts(items, "retro")
	assert.Len(t, byTitle, 1)
	assert.Equal(t, 1, byTitle[0].ID)

	byDescription := FilterProducts(items, "big day")
	assert.Len(t, byDescription, 1)
	assert.Equal(t, 3, byDescription[0].ID)
}

func TestFilterProductsCaseInsensitive(t *testing.T) {
	items := sampleProducts()

	assert.Equal(t, FilterProducts(items, "PHOTO"), FilterProducts(items, "photo"))
	assert.Len(t, FilterProducts(items, "MAGNET"), 2)
}

func TestFilterProductsEmptyTermMatchesAll(t *testing.T) {
	items := sampleProducts()

	assert.Len(t, FilterProducts(items, ""), 3)
	assert.Len(t, FilterProducts(items, "   "), 3)
}

func TestFilterProductsPreservesOrder(t *testing.T) {
	items := sampleProducts()

	out := FilterProducts(items, "magnet")
	assert.Equal(t, []int{1, 2}, []int{out[0].ID, out[1].ID})
}

func TestFilterProductsIdempotent(t *testing.T) {
	items := sampleProducts()

	once := FilterProducts(items, "magnet")
	twice := FilterProducts(once, "magnet")
	assert.Equal(t, once, twice)
}

func TestFilterProductsNoMatch(t *testing.T) {
	out := FilterProducts(sampleProducts(), "keychain")
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestFilterInquiriesSearchableFields(t *testing.T) {
	items := []models.Inquiry{
		{ID: 1, ReferenceID: "MM-K4T7WQ2H", Email: "alice@example.com", FirstName: "Alice", LastName: "Smith", Subject: "Bulk order"},
		{ID: 2, ReferenceID: "MM-ZZAABB99", Email: "bob@example.com", FirstName: "Bob", LastName: "Jones", Subject: "Damaged delivery"},
	}

	assert.Len(t, FilterInquiries(items, "mm-k4t7"), 1)
	assert.Len(t, FilterInquiries(items, "bob@"), 1)
	assert.Len(t, FilterInquiries(items, "jones"), 1)
	assert.Len(t, FilterInquiries(items, "order"), 1)
	assert.Len(t, FilterInquiries(items, "example.com"), 2)
}

func TestFilterUsersEmailOnly(t *testing.T) {
	items := []models.User{
		{ID: 1, Email: "admin@magnetmantra.in"},
		{ID: 2, Email: "staff@magnetmantra.in"},
	}

	assert.Len(t, FilterUsers(items, "admin"), 1)
	assert.Len(t, FilterUsers(items, "magnetmantra"), 2)
	assert.Empty(t, FilterUsers(items, "nobody"))
}

func TestFilterCategories(t *testing.T) {
	items := []models.Category{
		{ID: 1, Name: "Retro Prints", Description: "Vintage style"},
		{ID: 2, Name: "Photo Magnets", Description: "Custom photos"},
	}

	assert.Len(t, FilterCategories(items, "vintage"), 1)
	assert.Len(t, FilterCategories(items, "photo"), 1)
}
